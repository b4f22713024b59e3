package writerepo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"
)

type ItemRepository struct {
	dbtx db.Querier
}

func NewItemRepository(dbtx db.Querier) shared.ItemRepository {
	return &ItemRepository{dbtx: dbtx}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) error {
	query, args, err := psql.Insert("items").
		Columns("id", "owner_id", "name", "description", "is_available").
		Values(i.ID(), i.OwnerID(), i.Name(), i.Description(), i.IsAvailable()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build create item query", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	query, args, err := psql.Update("items").
		Set("name", i.Name()).
		Set("description", i.Description()).
		Set("is_available", i.IsAvailable()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": i.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build update item query", err)
	}

	ct, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
