package readstore

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"
)

type UserReadStore struct {
	dbtx db.Querier
}

func NewUserReadStore(dbtx db.Querier) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	query, args, err := psql.Select("id", "name", "email").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var v queries.UserView
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(&v.ID, &v.Name, &v.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	query, args, err := psql.Select("id", "name", "email").
		From("users").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user list query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := []*queries.UserView{}
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return views, nil
}

func (r *UserReadStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := psql.Select("1").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build user existence query", err)
	}

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}
