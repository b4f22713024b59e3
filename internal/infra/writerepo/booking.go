package writerepo

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type BookingRepository struct {
	dbtx db.Querier
}

func NewBookingRepository(dbtx db.Querier) shared.BookingRepository {
	return &BookingRepository{dbtx: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns("id", "item_id", "booker_id", "start_date", "end_date", "status").
		Values(b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), b.Status().String()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build create booking query", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	query, args, err := psql.Update("bookings").
		Set("status", status.String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build update booking status query", err)
	}

	ct, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
