package seating

import (
	"testing"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierForRow(t *testing.T) {
	cases := []struct {
		row   string
		tier  domain.SeatTier
		price int
	}{
		{"A", domain.TierVIP, 400},
		{"B", domain.TierVIP, 400},
		{"C", domain.TierVIP, 400},
		{"D", domain.TierPremium, 300},
		{"F", domain.TierPremium, 300},
		{"G", domain.TierStandard, 200},
		{"I", domain.TierStandard, 200},
		{"J", domain.TierEconomy, 150},
	}

	for _, tc := range cases {
		t.Run(tc.row, func(t *testing.T) {
			tier, price := TierForRow(tc.row)
			assert.Equal(t, tc.tier, tier)
			assert.Equal(t, tc.price, price)
		})
	}
}

func TestGenerate_DefaultLayout(t *testing.T) {
	m := Generate(DefaultLayout())
	rows := m.Rows()

	require.Len(t, rows, 10)
	assert.Equal(t, 140, m.Len())

	for _, r := range rows {
		require.Len(t, r, 14)
		for i, s := range r {
			assert.Equal(t, i+1, s.Number)
			tier, price := TierForRow(s.Row)
			assert.Equal(t, tier, s.Tier)
			assert.Equal(t, price, s.Price)
		}
	}

	assert.Equal(t, "A1", rows[0][0].ID)
	assert.Equal(t, "J14", rows[9][13].ID)
}

func TestGenerate_Occupied(t *testing.T) {
	m := Generate(DefaultLayout())

	for _, id := range DefaultLayout().Occupied {
		s, ok := m.Seat(id)
		require.True(t, ok, id)
		assert.True(t, s.IsOccupied, id)
	}

	s, ok := m.Seat("A1")
	require.True(t, ok)
	assert.False(t, s.IsOccupied)

	_, ok = m.Seat("Z1")
	assert.False(t, ok)
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(DefaultLayout()).Rows()
	second := Generate(DefaultLayout()).Rows()

	assert.Equal(t, first, second)
}

func TestRows_ReturnsCopy(t *testing.T) {
	m := Generate(DefaultLayout())

	rows := m.Rows()
	rows[0][0].IsOccupied = true

	s, _ := m.Seat("A1")
	assert.False(t, s.IsOccupied)
	assert.False(t, m.Rows()[0][0].IsOccupied)
}
