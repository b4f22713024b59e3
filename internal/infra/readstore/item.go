package readstore

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"
)

type ItemReadStore struct {
	dbtx db.Querier
}

func NewItemReadStore(dbtx db.Querier) *ItemReadStore {
	return &ItemReadStore{dbtx: dbtx}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query, args, err := itemSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	var v queries.ItemView
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return &v, nil
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	q := itemSelect().
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC")
	return r.list(ctx, q)
}

// likeEscaper neutralizes LIKE metacharacters so user text matches
// literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// SearchAvailable matches the text against name or description,
// case-insensitively, and only returns items open for booking.
func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemView, error) {
	pattern := likePattern(text)
	q := itemSelect().
		Where(squirrel.Eq{"is_available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("created_at ASC", "id ASC")
	return r.list(ctx, q)
}

func (r *ItemReadStore) CommentsForItem(ctx context.Context, itemID uuid.UUID) ([]queries.CommentView, error) {
	query, args, err := psql.Select("c.id", "c.text", "u.name", "c.created_at").
		From("comments c").
		Join("users u ON c.author_id = u.id").
		Where(squirrel.Eq{"c.item_id": itemID}).
		OrderBy("c.created_at DESC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comment query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	views := []queries.CommentView{}
	for rows.Next() {
		var v queries.CommentView
		if err := rows.Scan(&v.ID, &v.Text, &v.AuthorName, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return views, nil
}

func itemSelect() squirrel.SelectBuilder {
	return psql.Select("id", "owner_id", "name", "description", "is_available").
		From("items")
}

func (r *ItemReadStore) list(ctx context.Context, q squirrel.SelectBuilder) ([]*queries.ItemView, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item list query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := []*queries.ItemView{}
	for rows.Next() {
		var v queries.ItemView
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return views, nil
}
