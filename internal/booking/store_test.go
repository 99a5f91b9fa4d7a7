package booking

import (
	"testing"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_StartsEmpty(t *testing.T) {
	s := NewStore()
	b := s.Booking()

	assert.Nil(t, b.Movie)
	assert.Nil(t, b.Theater)
	assert.Empty(t, b.Showtime)
	assert.Empty(t, b.Date)
	assert.NotNil(t, b.Seats)
	assert.Empty(t, b.Seats)
	assert.Zero(t, b.TotalPrice)
}

func TestStore_UpdateMergesFields(t *testing.T) {
	s := NewStore()
	movie := &domain.Movie{ID: 1, Title: "Inception"}

	s.Update(SetMovie(movie), SetShowtime("1:30 PM"))
	s.Update(SetTheater(&domain.Theater{ID: 2, Name: "INOX"}), SetDate("2024-01-01"))

	b := s.Booking()
	assert.Equal(t, "Inception", b.Movie.Title)
	assert.Equal(t, "INOX", b.Theater.Name)
	assert.Equal(t, "1:30 PM", b.Showtime)
	assert.Equal(t, "2024-01-01", b.Date)
}

func TestStore_LastWriteWins(t *testing.T) {
	s := NewStore()

	s.Update(SetShowtime("10:00 AM"), SetShowtime("7:15 PM"))
	assert.Equal(t, "7:15 PM", s.Booking().Showtime)

	s.Update(SetShowtime("10:30 PM"))
	assert.Equal(t, "10:30 PM", s.Booking().Showtime)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Update(
		SetMovie(&domain.Movie{Title: "Dune"}),
		SetSeats([]domain.Seat{{ID: "A1", Price: 400}}, 400),
		SetPayment(&domain.Payment{ID: "PAY_X", Status: domain.PaymentCompleted, CreatedAt: time.Now()}),
	)

	s.Clear()

	assert.Equal(t, empty(), s.Booking())
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := NewStore()
	seats := []domain.Seat{{ID: "A1", Price: 400}}
	s.Update(SetSeats(seats, 400))

	seats[0].ID = "Z9"
	b := s.Booking()
	b.Seats[0].Price = 1

	again := s.Booking()
	assert.Equal(t, "A1", again.Seats[0].ID)
	assert.Equal(t, 400, again.Seats[0].Price)
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()

	var seen []domain.Booking
	unsubscribe := s.Subscribe(func(b domain.Booking) {
		seen = append(seen, b)
	})

	s.Update(SetShowtime("4:45 PM"))
	s.Clear()
	unsubscribe()
	s.Update(SetShowtime("10:00 AM"))

	require.Len(t, seen, 2)
	assert.Equal(t, "4:45 PM", seen[0].Showtime)
	assert.Empty(t, seen[1].Showtime)
}

func TestStore_SetPayment(t *testing.T) {
	s := NewStore()
	now := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)

	s.Update(SetPayment(&domain.Payment{
		ID:        "PAY_ABC123XYZ",
		Method:    "upi",
		Amount:    803,
		Status:    domain.PaymentCompleted,
		CreatedAt: now,
	}))

	b := s.Booking()
	assert.Equal(t, "PAY_ABC123XYZ", b.PaymentID)
	assert.Equal(t, "upi", b.PaymentMethod)
	assert.Equal(t, 803, b.FinalAmount)
	require.NotNil(t, b.PaidAt)
	assert.True(t, now.Equal(*b.PaidAt))
}
