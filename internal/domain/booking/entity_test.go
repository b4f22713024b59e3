//go:build unit

package booking_test

import (
	"testing"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
	})

	t.Run("admission validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unavailable item",
				mutate: func(b *builder.BookingBuilder) { b.IsAvailable = false },
				errIs:  booking.ErrItemNotAvailable,
			},
			{
				name:   "owner booking own item",
				mutate: func(b *builder.BookingBuilder) { b.BookerID = b.OwnerID },
				errIs:  booking.ErrSelfBooking,
			},
			{
				name:   "available item by another user",
				mutate: func(b *builder.BookingBuilder) {},
			},
		})
	})

	t.Run("status is WAITING regardless of input", func(t *testing.T) {
		b1, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		b2, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusWaiting, b1.Status())
		assert.Equal(t, booking.StatusWaiting, b2.Status())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b1, err1 := builder.NewBookingBuilder().BuildDomain()
		b2, err2 := builder.NewBookingBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestDecide(t *testing.T) {
	build := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		return b
	}

	t.Run("approve from WAITING", func(t *testing.T) {
		b := build(t)
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject from WAITING", func(t *testing.T) {
		b := build(t)
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("re-approving an approved booking fails", func(t *testing.T) {
		b := build(t)
		require.NoError(t, b.Decide(true))

		err := b.Decide(true)
		assert.ErrorIs(t, err, booking.ErrAlreadyApproved)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("rejecting an approved booking fails", func(t *testing.T) {
		b := build(t)
		require.NoError(t, b.Decide(true))

		err := b.Decide(false)
		assert.ErrorIs(t, err, booking.ErrAlreadyApproved)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("any decision on a rejected booking fails", func(t *testing.T) {
		b := build(t)
		require.NoError(t, b.Decide(false))

		assert.ErrorIs(t, b.Decide(true), booking.ErrAlreadyRejected)
		assert.ErrorIs(t, b.Decide(false), booking.ErrAlreadyRejected)
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}

func TestInvolves(t *testing.T) {
	bb := builder.NewBookingBuilder()

	assert.True(t, booking.Involves(bb.BookerID, bb.OwnerID, bb.BookerID))
	assert.True(t, booking.Involves(bb.BookerID, bb.OwnerID, bb.OwnerID))
	assert.False(t, booking.Involves(bb.BookerID, bb.OwnerID, uuid.New()))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
