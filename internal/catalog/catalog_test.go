package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDates(t *testing.T) {
	from := time.Date(2024, 12, 29, 15, 0, 0, 0, time.UTC)

	dates := Dates(from)

	assert.Len(t, dates, BookingDays)
	assert.Equal(t, "2024-12-29", dates[0])
	assert.Equal(t, "2025-01-04", dates[6])
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-01-01"))
	assert.False(t, ValidDate("01/01/2024"))
	assert.False(t, ValidDate(""))
}

func TestMovie(t *testing.T) {
	m, ok := Movie(3)
	assert.True(t, ok)
	assert.Equal(t, "Inception", m.Title)

	_, ok = Movie(42)
	assert.False(t, ok)
}

func TestCollectionsAreCopies(t *testing.T) {
	ms := Movies()
	ms[0].Title = "changed"

	assert.Equal(t, "Avengers: Endgame", Movies()[0].Title)
	assert.Len(t, Theaters(), 4)
	assert.Equal(t, []string{"10:00 AM", "1:30 PM", "4:45 PM", "7:15 PM", "10:30 PM"}, Showtimes())
}

func TestTheater(t *testing.T) {
	th, ok := Theater(2)
	assert.True(t, ok)
	assert.Equal(t, "INOX - R City Mall", th.Name)

	_, ok = Theater(0)
	assert.False(t, ok)
}

func TestValidShowtime(t *testing.T) {
	assert.True(t, ValidShowtime("7:15 PM"))
	assert.False(t, ValidShowtime("7:15 pm"))
	assert.False(t, ValidShowtime("3:00 AM"))
}
