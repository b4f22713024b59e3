package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type BookingReadStore struct {
	dbtx db.Querier
}

func NewBookingReadStore(dbtx db.Querier) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingDetail, error) {
	query, args, err := bookingSelect().
		Column("i.owner_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking detail query", err)
	}

	var detail queries.BookingDetail
	v := &detail.View
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.Start, &v.End, &v.Status,
		&v.Item.ID, &v.Item.Name, &v.Booker.ID, &v.Booker.Name,
		&detail.ItemOwnerID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &detail, nil
}

func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	q := bookingSelect().Where(squirrel.Eq{"b.booker_id": bookerID})
	return r.list(ctx, applyStateFilter(q, filter, now))
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter booking.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	q := bookingSelect().Where(squirrel.Eq{"i.owner_id": ownerID})
	return r.list(ctx, applyStateFilter(q, filter, now))
}

// FindLastForItem returns the APPROVED booking with the greatest end strictly
// before now. A lone future booking is never reported as last.
func (r *BookingReadStore) FindLastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	q := psql.Select("id", "booker_id").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Eq{"status": booking.StatusApproved}).
		Where(squirrel.Lt{"end_date": now}).
		OrderBy("end_date DESC").
		Limit(1)
	return r.findRef(ctx, q, "failed to find last booking")
}

func (r *BookingReadStore) FindNextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	q := psql.Select("id", "booker_id").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Eq{"status": booking.StatusApproved}).
		Where(squirrel.Gt{"start_date": now}).
		OrderBy("start_date ASC").
		Limit(1)
	return r.findRef(ctx, q, "failed to find next booking")
}

func bookingSelect() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"i.id", "i.name", "u.id", "u.name",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Join("users u ON b.booker_id = u.id")
}

// One ordering convention for every bucket: start ascending, id as the
// deterministic tiebreak.
func applyStateFilter(q squirrel.SelectBuilder, filter booking.StateFilter, now time.Time) squirrel.SelectBuilder {
	switch filter {
	case booking.FilterCurrent:
		q = q.Where(squirrel.Lt{"b.start_date": now}).Where(squirrel.Gt{"b.end_date": now})
	case booking.FilterPast:
		q = q.Where(squirrel.Lt{"b.end_date": now})
	case booking.FilterFuture:
		q = q.Where(squirrel.Gt{"b.start_date": now})
	case booking.FilterWaiting:
		q = q.Where(squirrel.Eq{"b.status": booking.StatusWaiting})
	case booking.FilterRejected:
		q = q.Where(squirrel.Eq{"b.status": booking.StatusRejected})
	}
	return q.OrderBy("b.start_date ASC", "b.id ASC")
}

func (r *BookingReadStore) list(ctx context.Context, q squirrel.SelectBuilder) ([]*queries.BookingView, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.Start, &v.End, &v.Status,
			&v.Item.ID, &v.Item.Name, &v.Booker.ID, &v.Booker.Name,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func (r *BookingReadStore) findRef(ctx context.Context, q squirrel.SelectBuilder, msg string) (*queries.BookingRef, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}

	var ref queries.BookingRef
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(&ref.ID, &ref.BookerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return &ref, nil
}
