package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

// Read models (DTO for read side)
type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
}

// BookingDetail carries the item owner alongside the view so access control
// can be applied without a second round trip.
type BookingDetail struct {
	View        BookingView
	ItemOwnerID uuid.UUID
}

// BookingRef is the {id, bookerId} summary attached to item views. Computed
// on demand, never stored.
type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
}

// Window holds the most recent completed and soonest upcoming APPROVED
// bookings of an item relative to a reference instant.
type Window struct {
	Last *BookingRef
	Next *BookingRef
}

type BookingQueries interface {
	// GetByID returns the booking when the actor is the booker or the item
	// owner; anyone else gets ErrNotAuthorized, which the transport reports
	// as not-found.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses the participant check; for internal
	// read-after-write use only.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, state string) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state string) ([]*BookingView, error)
	// ResolveWindow applies the strict rule: last has end < now, next has
	// start > now, APPROVED only.
	ResolveWindow(ctx context.Context, itemID uuid.UUID, now time.Time) (Window, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingDetail, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.StateFilter, now time.Time) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter booking.StateFilter, now time.Time) ([]*BookingView, error)
	FindLastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	FindNextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
}

type UserExistenceReads interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserExistenceReads
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserExistenceReads, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, users: users, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	detail, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !booking.Involves(detail.View.Booker.ID, detail.ItemOwnerID, actorID) {
		return nil, errs.ErrNotAuthorized
	}
	return &detail.View, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	detail, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &detail.View, nil
}

// Booker existence is deliberately not validated here; an unknown booker
// simply owns no bookings.
func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID uuid.UUID, state string) ([]*BookingView, error) {
	filter, err := booking.ParseStateFilter(state)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownState)
	}

	views, err := q.store.ListByBooker(ctx, bookerID, filter, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, state string) ([]*BookingView, error) {
	filter, err := booking.ParseStateFilter(state)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownState)
	}

	exists, err := q.users.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	// Owners with zero items fall through to an empty result, not an error.
	views, err := q.store.ListByOwner(ctx, ownerID, filter, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ResolveWindow(ctx context.Context, itemID uuid.UUID, now time.Time) (Window, error) {
	last, err := q.store.FindLastForItem(ctx, itemID, now)
	if err != nil {
		return Window{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	next, err := q.store.FindNextForItem(ctx, itemID, now)
	if err != nil {
		return Window{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return Window{Last: last, Next: next}, nil
}
