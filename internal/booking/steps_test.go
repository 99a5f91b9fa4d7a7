package booking

import (
	"testing"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stretchr/testify/assert"
)

func showSelected() *Store {
	s := NewStore()
	s.Update(
		SetMovie(&domain.Movie{ID: 3, Title: "Inception"}),
		SetTheater(&domain.Theater{ID: 1, Name: "PVR Cinemas - Phoenix Mall"}),
		SetShowtime("7:15 PM"),
		SetDate("2024-01-01"),
	)
	return s
}

func TestCanEnter_Seats(t *testing.T) {
	assert.NoError(t, CanEnter(NewStore().Booking(), StepShow))

	err := CanEnter(NewStore().Booking(), StepSeats)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrShowNotSelected)

	s := showSelected()
	s.Update(SetTheater(nil))
	assert.ErrorIs(t, CanEnter(s.Booking(), StepSeats), domain.ErrShowNotSelected)

	s = showSelected()
	s.Update(SetMovie(nil))
	assert.ErrorIs(t, CanEnter(s.Booking(), StepSeats), domain.ErrShowNotSelected)

	assert.NoError(t, CanEnter(showSelected().Booking(), StepSeats))
}

func TestCanEnter_Payment(t *testing.T) {
	s := showSelected()

	assert.ErrorIs(t, CanEnter(s.Booking(), StepPayment), domain.ErrNoSeatsSelected)

	s.Update(SetSeats([]domain.Seat{{ID: "A1", Price: 400}}, 400))
	assert.NoError(t, CanEnter(s.Booking(), StepPayment))
}

func TestCanEnter_Confirmation(t *testing.T) {
	s := showSelected()
	s.Update(SetSeats([]domain.Seat{{ID: "A1", Price: 400}}, 400))

	assert.ErrorIs(t, CanEnter(s.Booking(), StepConfirmation), domain.ErrPaymentRequired)

	s.Update(SetPayment(&domain.Payment{ID: "PAY_1", Status: domain.PaymentCompleted, CreatedAt: time.Now()}))
	assert.NoError(t, CanEnter(s.Booking(), StepConfirmation))
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "seats", StepSeats.String())
	assert.Equal(t, "step(9)", Step(9).String())
}
