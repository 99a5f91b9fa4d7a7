package seating

import (
	"strconv"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

// Layout describes the auditorium: row labels front to back, seats per row
// and the ids of seats that are already taken.
type Layout struct {
	Rows        []string
	SeatsPerRow int
	Occupied    []string
}

func DefaultLayout() Layout {
	return Layout{
		Rows:        []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"},
		SeatsPerRow: 14,
		Occupied:    []string{"A5", "A6", "B8", "C2", "C3", "D10", "E7", "F12", "F13", "G5", "H9"},
	}
}

// TierForRow maps a row label to its pricing band. Rows after I fall into
// the Economy band.
func TierForRow(row string) (domain.SeatTier, int) {
	switch {
	case row <= "C":
		return domain.TierVIP, 400
	case row <= "F":
		return domain.TierPremium, 300
	case row <= "I":
		return domain.TierStandard, 200
	default:
		return domain.TierEconomy, 150
	}
}

type Map struct {
	rows  [][]domain.Seat
	index map[string]domain.Seat
}

// Generate builds the seat grid for l. The result depends only on l.
func Generate(l Layout) *Map {
	occupied := make(map[string]struct{}, len(l.Occupied))
	for _, id := range l.Occupied {
		occupied[id] = struct{}{}
	}

	m := &Map{
		rows:  make([][]domain.Seat, 0, len(l.Rows)),
		index: make(map[string]domain.Seat, len(l.Rows)*l.SeatsPerRow),
	}

	for _, row := range l.Rows {
		tier, price := TierForRow(row)
		seats := make([]domain.Seat, 0, l.SeatsPerRow)
		for n := 1; n <= l.SeatsPerRow; n++ {
			id := row + strconv.Itoa(n)
			_, taken := occupied[id]
			seat := domain.Seat{
				ID:         id,
				Row:        row,
				Number:     n,
				IsOccupied: taken,
				Price:      price,
				Tier:       tier,
			}
			seats = append(seats, seat)
			m.index[id] = seat
		}
		m.rows = append(m.rows, seats)
	}

	return m
}

// Rows returns a copy of the grid, front row first.
func (m *Map) Rows() [][]domain.Seat {
	out := make([][]domain.Seat, len(m.rows))
	for i, r := range m.rows {
		out[i] = append([]domain.Seat(nil), r...)
	}
	return out
}

func (m *Map) Seat(id string) (domain.Seat, bool) {
	s, ok := m.index[id]
	return s, ok
}

func (m *Map) Len() int {
	return len(m.index)
}
