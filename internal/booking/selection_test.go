package booking

import (
	"fmt"
	"testing"

	"github.com/stpnv0/CinemaDistrict/internal/seating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelection() *Selection {
	return NewSelection(seating.Generate(seating.DefaultLayout()))
}

func TestToggle_AddRemove(t *testing.T) {
	sel := newSelection()

	assert.Equal(t, Added, sel.Toggle("A1"))
	assert.Equal(t, Added, sel.Toggle("J3"))
	assert.Equal(t, []string{"A1", "J3"}, sel.IDs())
	assert.Equal(t, 550, sel.Subtotal())

	assert.Equal(t, Removed, sel.Toggle("A1"))
	assert.Equal(t, []string{"J3"}, sel.IDs())
}

func TestToggle_TwiceIsNoop(t *testing.T) {
	sel := newSelection()
	sel.Toggle("D4")
	before := sel.IDs()

	sel.Toggle("E1")
	sel.Toggle("E1")

	assert.Equal(t, before, sel.IDs())
}

func TestToggle_OccupiedIgnored(t *testing.T) {
	sel := newSelection()

	assert.Equal(t, Occupied, sel.Toggle("A5"))
	assert.Equal(t, 0, sel.Len())
}

func TestToggle_UnknownIgnored(t *testing.T) {
	sel := newSelection()

	assert.Equal(t, Unknown, sel.Toggle("K1"))
	assert.Equal(t, Unknown, sel.Toggle(""))
	assert.Equal(t, 0, sel.Len())
}

func TestToggle_LimitReached(t *testing.T) {
	sel := newSelection()
	for i := 1; i <= MaxSeats; i++ {
		require.Equal(t, Added, sel.Toggle(fmt.Sprintf("G%d", i+5)))
	}
	before := sel.IDs()

	assert.Equal(t, LimitReached, sel.Toggle("A1"))
	assert.Equal(t, before, sel.IDs())

	// removals are never blocked by the limit
	assert.Equal(t, Removed, sel.Toggle("G6"))
	assert.Equal(t, Added, sel.Toggle("A1"))
	assert.Equal(t, MaxSeats, sel.Len())
}

func TestSelection_Seats(t *testing.T) {
	sel := newSelection()
	sel.Toggle("A1")
	sel.Toggle("A2")

	seats := sel.Seats()
	require.Len(t, seats, 2)
	assert.Equal(t, "A1", seats[0].ID)
	assert.Equal(t, 400, seats[0].Price)
	assert.Equal(t, 800, sel.Subtotal())
}
