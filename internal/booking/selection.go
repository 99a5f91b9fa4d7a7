package booking

import (
	"slices"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/pricing"
	"github.com/stpnv0/CinemaDistrict/internal/seating"
)

const MaxSeats = 8

type Outcome int

const (
	Added Outcome = iota
	Removed
	Occupied
	LimitReached
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Occupied:
		return "occupied"
	case LimitReached:
		return "limit_reached"
	default:
		return "unknown"
	}
}

// Selection tracks the seats picked on a seat map, in click order.
type Selection struct {
	seats    *seating.Map
	selected []string
}

func NewSelection(m *seating.Map) *Selection {
	return &Selection{seats: m}
}

// Toggle flips seatID in or out of the selection. Occupied and unknown
// seats are ignored; a ninth seat is refused while removals always succeed.
func (s *Selection) Toggle(seatID string) Outcome {
	seat, ok := s.seats.Seat(seatID)
	if !ok {
		return Unknown
	}
	if seat.IsOccupied {
		return Occupied
	}

	if i := slices.Index(s.selected, seatID); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
		return Removed
	}

	if len(s.selected) >= MaxSeats {
		return LimitReached
	}

	s.selected = append(s.selected, seatID)
	return Added
}

func (s *Selection) IDs() []string {
	return slices.Clone(s.selected)
}

func (s *Selection) Len() int {
	return len(s.selected)
}

func (s *Selection) Seats() []domain.Seat {
	out := make([]domain.Seat, 0, len(s.selected))
	for _, id := range s.selected {
		seat, _ := s.seats.Seat(id)
		out = append(out, seat)
	}
	return out
}

func (s *Selection) Subtotal() int {
	return pricing.Subtotal(s.Seats())
}
