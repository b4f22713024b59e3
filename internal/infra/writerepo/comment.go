package writerepo

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"
)

type CommentRepository struct {
	dbtx db.Querier
}

func NewCommentRepository(dbtx db.Querier) shared.CommentRepository {
	return &CommentRepository{dbtx: dbtx}
}

func (r *CommentRepository) Create(ctx context.Context, params shared.CommentParams) error {
	query, args, err := psql.Insert("comments").
		Columns("id", "item_id", "author_id", "text").
		Values(params.ID, params.ItemID, params.AuthorID, params.Text).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build create comment query", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}
