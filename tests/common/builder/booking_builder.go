//go:build unit || e2e

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ItemID      uuid.UUID
	ItemName    string
	OwnerID     uuid.UUID
	BookerID    uuid.UUID
	BookerName  string
	IsAvailable bool
	Start       time.Time
	End         time.Time
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ItemID:      uuid.New(),
		ItemName:    "Cordless drill",
		OwnerID:     uuid.New(),
		BookerID:    uuid.New(),
		BookerName:  "Hanako Suzuki",
		IsAvailable: true,
		Start:       now.Add(24 * time.Hour),
		End:         now.Add(48 * time.Hour),
		Now:         now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildPeriod() (dombooking.Period, error) {
	return dombooking.NewPeriod(b.Start, b.End, b.Now)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := b.BuildPeriod()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(dombooking.ItemSpec{
		ID:          b.ItemID,
		OwnerID:     b.OwnerID,
		IsAvailable: b.IsAvailable,
	}, b.BookerID, period)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:     uuid.New(),
		Start:  b.Start,
		End:    b.End,
		Status: dombooking.StatusWaiting.String(),
		Item:   queries.ItemRef{ID: b.ItemID, Name: b.ItemName},
		Booker: queries.UserRef{ID: b.BookerID, Name: b.BookerName},
	}
}
