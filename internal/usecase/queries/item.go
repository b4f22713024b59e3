package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

type ItemView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDetailView is the item-detail read model. The booking window is
// populated only for the item's owner.
type ItemDetailView struct {
	ItemView
	LastBooking *BookingRef   `json:"lastBooking"`
	NextBooking *BookingRef   `json:"nextBooking"`
	Comments    []CommentView `json:"comments"`
}

type ItemQueries interface {
	GetDetail(ctx context.Context, itemID, actorID uuid.UUID) (*ItemDetailView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemView, error)
	CommentsForItem(ctx context.Context, itemID uuid.UUID) ([]CommentView, error)
}

type itemQueriesImpl struct {
	store    ItemReadStore
	bookings BookingQueries
	clock    clock.Clock
}

func NewItemQueries(store ItemReadStore, bookings BookingQueries, clock clock.Clock) ItemQueries {
	return &itemQueriesImpl{store: store, bookings: bookings, clock: clock}
}

func (q *itemQueriesImpl) GetDetail(ctx context.Context, itemID, actorID uuid.UUID) (*ItemDetailView, error) {
	view, err := q.store.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	detail := &ItemDetailView{ItemView: *view}

	// Non-owners see no booking window at all.
	if view.OwnerID == actorID {
		window, err := q.bookings.ResolveWindow(ctx, itemID, q.clock.Now())
		if err != nil {
			return nil, err
		}
		detail.LastBooking = window.Last
		detail.NextBooking = window.Next
	}

	comments, err := q.store.CommentsForItem(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	detail.Comments = comments

	return detail, nil
}

func (q *itemQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error) {
	views, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	result := make([]*ItemDetailView, len(views))
	for i, view := range views {
		window, err := q.bookings.ResolveWindow(ctx, view.ID, now)
		if err != nil {
			return nil, err
		}
		comments, err := q.store.CommentsForItem(ctx, view.ID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result[i] = &ItemDetailView{
			ItemView:    *view,
			LastBooking: window.Last,
			NextBooking: window.Next,
			Comments:    comments,
		}
	}
	return result, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*ItemView{}, nil
	}

	views, err := q.store.SearchAvailable(ctx, text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
