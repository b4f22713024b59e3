package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
)

// UnitOfWork runs booking mutations as a single request-scoped transaction.
// The availability check and the insert that follows it must share one
// transaction; the store-level exclusion constraint backstops the race.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	Reads() CommandReads
}

// CommandReads are the in-transaction reads commands validate against.
type CommandReads interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	UserNameByID(ctx context.Context, id uuid.UUID) (string, error)
	// BookingForUpdate locks the row so two concurrent decisions serialize.
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// ApprovedPeriods returns the APPROVED intervals of the item; the
	// admission command evaluates overlap against them.
	ApprovedPeriods(ctx context.Context, itemID uuid.UUID) ([]booking.Period, error)
	// ApprovedPeriodsForBooker returns the booker's APPROVED intervals of
	// the item; the comment gate checks whether any of them has ended.
	ApprovedPeriodsForBooker(ctx context.Context, itemID, bookerID uuid.UUID) ([]booking.Period, error)
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	IsAvailable bool
}

type BookingSnapshot struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	BookerID  uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Status    booking.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CommentParams struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	AuthorID uuid.UUID
	Text     string
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) error
	Update(ctx context.Context, i *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, params CommentParams) error
}
