package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfBooking      = errors.New("owner cannot book own item")
	ErrItemNotAvailable = errors.New("item is not available")
	ErrAlreadyApproved  = errors.New("booking is already approved")
	ErrAlreadyRejected  = errors.New("booking is already rejected")
)

// ItemSpec is the directory snapshot a booking admission needs. The directory
// is consulted, never mutated.
type ItemSpec struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	IsAvailable bool
}

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking admits a booking request against the item snapshot. The
// status is always WAITING regardless of anything the caller supplied; the
// overlap check against approved bookings happens in the admitting
// transaction.
func NewBooking(item ItemSpec, bookerID uuid.UUID, period Period) (*Booking, error) {
	if !item.IsAvailable {
		return nil, ErrItemNotAvailable
	}
	if item.OwnerID == bookerID {
		return nil, ErrSelfBooking
	}

	return &Booking{
		id:       uuid.New(),
		itemID:   item.ID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide applies the owner's verdict. Terminal states never change again:
// re-approving reports ErrAlreadyApproved, touching a rejected booking
// reports ErrAlreadyRejected.
func (b *Booking) Decide(approve bool) error {
	if b.status.IsTerminal() {
		if b.status == StatusApproved {
			return ErrAlreadyApproved
		}
		return ErrAlreadyRejected
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// Involves reports whether userID is the booker or the item owner. Anyone
// else has no business seeing the booking.
func Involves(bookerID, ownerID, userID uuid.UUID) bool {
	return bookerID == userID || ownerID == userID
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ItemID() uuid.UUID   { return b.itemID }
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }
func (b *Booking) Period() Period      { return b.period }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
