package booking

import (
	"fmt"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

type Step int

const (
	StepShow Step = iota
	StepSeats
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepShow:
		return "show"
	case StepSeats:
		return "seats"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// CanEnter reports whether b carries everything the given step needs.
func CanEnter(b domain.Booking, step Step) error {
	if step >= StepSeats {
		if b.Movie == nil || b.Theater == nil || b.Showtime == "" || b.Date == "" {
			return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrShowNotSelected)
		}
	}

	if step >= StepPayment && len(b.Seats) == 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrNoSeatsSelected)
	}

	if step >= StepConfirmation && (b.PaymentID == "" || b.PaymentStatus != domain.PaymentCompleted) {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrPaymentRequired)
	}

	return nil
}
