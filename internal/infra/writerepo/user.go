package writerepo

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"
)

type UserRepository struct {
	dbtx db.Querier
}

func NewUserRepository(dbtx db.Querier) shared.UserRepository {
	return &UserRepository{dbtx: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query, args, err := psql.Insert("users").
		Columns("id", "name", "email").
		Values(u.ID(), u.Name(), u.Email().String()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build create user query", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	query, args, err := psql.Update("users").
		Set("name", u.Name()).
		Set("email", u.Email().String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": u.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build update user query", err)
	}

	ct, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build delete user query", err)
	}

	ct, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
