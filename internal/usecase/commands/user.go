package commands

import (
	"context"

	"github.com/google/uuid"

	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

var ErrInvalidUserPayload = errs.New("invalid user payload")

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error)
	Patch(ctx context.Context, userID uuid.UUID, req reqdto.PatchUserRequest) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
	clock       clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, userQueries queries.UserQueries, clock clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, userQueries: userQueries, clock: clock}
}

func (c *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserPayload)
	}
	entity, err := user.NewUser(req.Name, email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserPayload)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrEmailTaken)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.UserView{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Email: entity.Email().String(),
	}, nil
}

func (c *userCommandsImpl) Patch(ctx context.Context, userID uuid.UUID, req reqdto.PatchUserRequest) (*queries.UserView, error) {
	var view *queries.UserView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := c.userQueries.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		email, err := user.NewEmail(current.Email)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		entity := user.ReconstructUser(current.ID, current.Name, email, c.clock.Now(), c.clock.Now())
		if err := entity.ApplyPatch(req.Name, req.Email); err != nil {
			return errs.Mark(err, ErrInvalidUserPayload)
		}

		if err := tx.Users().Update(ctx, entity); err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, errs.ErrEmailTaken)
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, errs.ErrUserNotFound)
			default:
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		view = &queries.UserView{
			ID:    entity.ID(),
			Name:  entity.Name(),
			Email: entity.Email().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrUserNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
