package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

var (
	ErrInvalidItemPayload    = errs.New("invalid item payload")
	ErrInvalidCommentPayload = errs.New("invalid comment payload")
)

type ItemCommands interface {
	Create(ctx context.Context, actorID uuid.UUID, req reqdto.CreateItemRequest) (*queries.ItemView, error)
	// Patch updates only the supplied fields. A non-owner gets
	// ErrItemNotFound rather than a hint that the item exists.
	Patch(ctx context.Context, actorID, itemID uuid.UUID, req reqdto.PatchItemRequest) (*queries.ItemView, error)
	// AddComment is gated on a completed APPROVED booking of the item by
	// the author.
	AddComment(ctx context.Context, actorID, itemID uuid.UUID, req reqdto.CreateCommentRequest) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, clock clock.Clock) ItemCommands {
	return &itemCommandsImpl{uow: uow, clock: clock}
}

func (c *itemCommandsImpl) Create(
	ctx context.Context,
	actorID uuid.UUID,
	req reqdto.CreateItemRequest,
) (*queries.ItemView, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	entity, err := item.NewItem(actorID, req.Name, req.Description, available)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidItemPayload)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().UserExists(ctx, actorID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !exists {
			return errs.ErrUserNotFound
		}

		if err := tx.Items().Create(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return itemViewOf(entity), nil
}

func (c *itemCommandsImpl) Patch(
	ctx context.Context,
	actorID, itemID uuid.UUID,
	req reqdto.PatchItemRequest,
) (*queries.ItemView, error) {
	var view *queries.ItemView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrItemNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		entity := item.ReconstructItem(
			snap.ID, snap.OwnerID, snap.Name, snap.Description, snap.IsAvailable,
			c.clock.Now(), c.clock.Now(),
		)
		// Ownership is reported as absence.
		if !entity.IsOwnedBy(actorID) {
			return errs.ErrItemNotFound
		}
		if err := entity.ApplyPatch(req.Name, req.Description, req.Available); err != nil {
			return errs.Mark(err, ErrInvalidItemPayload)
		}

		if err := tx.Items().Update(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrItemNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		view = itemViewOf(entity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (c *itemCommandsImpl) AddComment(
	ctx context.Context,
	actorID, itemID uuid.UUID,
	req reqdto.CreateCommentRequest,
) (*queries.CommentView, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrInvalidCommentPayload
	}

	var view *queries.CommentView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ItemByID(ctx, itemID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrItemNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		authorName, err := tx.Reads().UserNameByID(ctx, actorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrUserNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		now := c.clock.Now()
		approved, err := tx.Reads().ApprovedPeriodsForBooker(ctx, itemID, actorID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		finished := false
		for _, p := range approved {
			if p.IsPast(now) {
				finished = true
				break
			}
		}
		if !finished {
			return errs.ErrCommentWithoutBooking
		}

		params := shared.CommentParams{
			ID:       uuid.New(),
			ItemID:   itemID,
			AuthorID: actorID,
			Text:     text,
		}
		if err := tx.Comments().Create(ctx, params); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		view = &queries.CommentView{
			ID:         params.ID,
			Text:       params.Text,
			AuthorName: authorName,
			Created:    now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func itemViewOf(entity *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          entity.ID(),
		OwnerID:     entity.OwnerID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Available:   entity.IsAvailable(),
	}
}
