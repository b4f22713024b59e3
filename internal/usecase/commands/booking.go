package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

type BookingCommands interface {
	// Create admits a WAITING booking for the actor. The availability check
	// and the insert run in one transaction; the store-level exclusion
	// constraint closes the remaining race window.
	Create(ctx context.Context, actorID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	// Decide applies the owner's verdict to a WAITING booking.
	Decide(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	actorID uuid.UUID,
	req reqdto.CreateBookingRequest,
) (*queries.BookingView, error) {
	var bookingID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().UserExists(ctx, actorID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !exists {
			return errs.ErrUserNotFound
		}

		itemSnap, err := tx.Reads().ItemByID(ctx, req.ItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrItemNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		period, err := booking.NewPeriod(req.Start, req.End, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidInterval)
		}

		entity, err := booking.NewBooking(booking.ItemSpec{
			ID:          itemSnap.ID,
			OwnerID:     itemSnap.OwnerID,
			IsAvailable: itemSnap.IsAvailable,
		}, actorID, period)
		if err != nil {
			return markAdmissionError(err)
		}

		approved, err := tx.Reads().ApprovedPeriods(ctx, itemSnap.ID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, p := range approved {
			if p.Overlaps(period) {
				return errs.ErrTimeConflict
			}
		}

		if err := tx.Bookings().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrTimeConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		bookingID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) Decide(
	ctx context.Context,
	actorID, bookingID uuid.UUID,
	approve bool,
) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		itemSnap, err := tx.Reads().ItemByID(ctx, snap.ItemID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if itemSnap.OwnerID != actorID {
			return errs.ErrNotAuthorized
		}

		entity := booking.ReconstructBooking(
			snap.ID, snap.ItemID, snap.BookerID,
			booking.ReconstructPeriod(snap.StartDate, snap.EndDate),
			snap.Status,
			snap.CreatedAt, snap.UpdatedAt,
		)
		if err := entity.Decide(approve); err != nil {
			return markDecisionError(err)
		}

		// Approving can still collide with a booking approved in between;
		// the exclusion constraint reports it as a conflict.
		if err := tx.Bookings().UpdateStatus(ctx, bookingID, entity.Status()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrTimeConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func markAdmissionError(err error) error {
	switch {
	case errors.Is(err, booking.ErrItemNotAvailable):
		return errs.Mark(err, errs.ErrItemNotAvailable)
	case errors.Is(err, booking.ErrSelfBooking):
		return errs.Mark(err, errs.ErrSelfBooking)
	default:
		return err
	}
}

func markDecisionError(err error) error {
	switch {
	case errors.Is(err, booking.ErrAlreadyApproved):
		return errs.Mark(err, errs.ErrAlreadyApproved)
	case errors.Is(err, booking.ErrAlreadyRejected):
		return errs.Mark(err, errs.ErrAlreadyRejected)
	default:
		return err
	}
}
