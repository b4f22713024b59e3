package uow

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
	"shareit/internal/usecase/shared"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type commandReads struct {
	dbtx db.Querier
}

func newCommandReads(dbtx db.Querier) shared.CommandReads {
	return &commandReads{dbtx: dbtx}
}

func (r *commandReads) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	query, args, err := psql.Select("id", "owner_id", "name", "description", "is_available").
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item snapshot query", err)
	}

	var snap shared.ItemSnapshot
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.Description, &snap.IsAvailable,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read item snapshot", err)
	}
	return &snap, nil
}

func (r *commandReads) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	sub, args, err := psql.Select("1").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build user exists query", err)
	}

	var exists bool
	if err := r.dbtx.QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *commandReads) UserNameByID(ctx context.Context, id uuid.UUID) (string, error) {
	query, args, err := psql.Select("name").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", infra.WrapRepoErr("failed to build user name query", err)
	}

	var name string
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read user name", err)
	}
	return name, nil
}

// BookingForUpdate takes a row lock so concurrent decisions on the same
// booking serialize instead of both observing WAITING.
func (r *commandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	query, args, err := psql.Select("id", "item_id", "booker_id", "start_date", "end_date", "status", "created_at", "updated_at").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking lock query", err)
	}

	var snap shared.BookingSnapshot
	var status string
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.ItemID, &snap.BookerID,
		&snap.StartDate, &snap.EndDate, &status,
		&snap.CreatedAt, &snap.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	snap.Status = booking.Status(status)
	if !snap.Status.IsValid() {
		return nil, infra.WrapRepoErr("unexpected booking status "+status, nil)
	}
	return &snap, nil
}

func (r *commandReads) ApprovedPeriods(ctx context.Context, itemID uuid.UUID) ([]booking.Period, error) {
	q := approvedPeriodSelect().
		Where(squirrel.Eq{"item_id": itemID})
	return r.listPeriods(ctx, q)
}

func (r *commandReads) ApprovedPeriodsForBooker(ctx context.Context, itemID, bookerID uuid.UUID) ([]booking.Period, error) {
	q := approvedPeriodSelect().
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Eq{"booker_id": bookerID})
	return r.listPeriods(ctx, q)
}

func approvedPeriodSelect() squirrel.SelectBuilder {
	return psql.Select("start_date", "end_date").
		From("bookings").
		Where(squirrel.Eq{"status": booking.StatusApproved}).
		OrderBy("start_date ASC")
}

func (r *commandReads) listPeriods(ctx context.Context, q squirrel.SelectBuilder) ([]booking.Period, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build approved period query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved periods", err)
	}
	defer rows.Close()

	var periods []booking.Period
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approved period row", err)
		}
		periods = append(periods, booking.ReconstructPeriod(start, end))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate approved period rows", err)
	}
	return periods, nil
}
