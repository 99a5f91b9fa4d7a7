// Package catalog holds the static movie, theater and showtime reference
// data the booking flow is offered against.
package catalog

import (
	"slices"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

const (
	DateLayout  = "2006-01-02"
	BookingDays = 7
)

var showtimes = []string{"10:00 AM", "1:30 PM", "4:45 PM", "7:15 PM", "10:30 PM"}

var movies = []domain.Movie{
	{ID: 1, Title: "Avengers: Endgame", Rating: 8.4, Duration: "3h 1m", ReleaseYear: 2019, Genre: "Action",
		Description: "After the devastating events of Infinity War, the Avengers assemble once more to reverse Thanos' actions and restore balance to the universe."},
	{ID: 2, Title: "The Dark Knight", Rating: 9.0, Duration: "2h 32m", ReleaseYear: 2008, Genre: "Action",
		Description: "Batman faces the Joker, a criminal mastermind who wants to plunge Gotham City into anarchy."},
	{ID: 3, Title: "Inception", Rating: 8.8, Duration: "2h 28m", ReleaseYear: 2010, Genre: "Sci-Fi",
		Description: "A skilled thief is given a chance at redemption if he can successfully perform an inception."},
	{ID: 4, Title: "Interstellar", Rating: 8.6, Duration: "2h 49m", ReleaseYear: 2014, Genre: "Sci-Fi",
		Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival."},
	{ID: 5, Title: "The Matrix", Rating: 8.7, Duration: "2h 16m", ReleaseYear: 1999, Genre: "Sci-Fi",
		Description: "A computer programmer discovers reality as he knows it is actually a simulation."},
	{ID: 6, Title: "Pulp Fiction", Rating: 8.9, Duration: "2h 34m", ReleaseYear: 1994, Genre: "Crime",
		Description: "The lives of two mob hitmen, a boxer, and others intertwine in four tales of violence and redemption."},
	{ID: 7, Title: "Dune", Rating: 8.0, Duration: "2h 35m", ReleaseYear: 2021, Genre: "Sci-Fi",
		Description: "A noble family becomes embroiled in a war for control over the galaxy's most valuable asset."},
	{ID: 8, Title: "No Time to Die", Rating: 7.3, Duration: "2h 43m", ReleaseYear: 2021, Genre: "Action",
		Description: "James Bond has left active service, but his peace is short-lived when Felix Leiter asks for help."},
	{ID: 9, Title: "Spider-Man: No Way Home", Rating: 8.2, Duration: "2h 28m", ReleaseYear: 2021, Genre: "Action",
		Description: "Spider-Man's identity is revealed and he asks Doctor Strange for help, but it becomes dangerous."},
	{ID: 10, Title: "Top Gun: Maverick", Rating: 8.3, Duration: "2h 11m", ReleaseYear: 2022, Genre: "Action",
		Description: "After more than thirty years of service, Pete 'Maverick' Mitchell is where he belongs."},
}

var theaters = []domain.Theater{
	{ID: 1, Name: "PVR Cinemas - Phoenix Mall", Location: "Lower Parel, Mumbai", Screens: 8,
		Amenities: []string{"IMAX", "4DX", "Dolby Atmos"}},
	{ID: 2, Name: "INOX - R City Mall", Location: "Ghatkopar, Mumbai", Screens: 6,
		Amenities: []string{"IMAX", "Dolby Atmos", "Recliner Seats"}},
	{ID: 3, Name: "Cinepolis - Fun Republic", Location: "Andheri, Mumbai", Screens: 10,
		Amenities: []string{"4DX", "VIP Lounge", "Gourmet Dining"}},
	{ID: 4, Name: "Carnival Cinemas - Imax Wadala", Location: "Wadala, Mumbai", Screens: 7,
		Amenities: []string{"IMAX", "Premium Seats", "Food Court"}},
}

func Movies() []domain.Movie {
	return slices.Clone(movies)
}

func Movie(id int) (domain.Movie, bool) {
	i := slices.IndexFunc(movies, func(m domain.Movie) bool { return m.ID == id })
	if i < 0 {
		return domain.Movie{}, false
	}
	return movies[i], true
}

func Theaters() []domain.Theater {
	return slices.Clone(theaters)
}

func Theater(id int) (domain.Theater, bool) {
	i := slices.IndexFunc(theaters, func(t domain.Theater) bool { return t.ID == id })
	if i < 0 {
		return domain.Theater{}, false
	}
	return theaters[i], true
}

func Showtimes() []string {
	return slices.Clone(showtimes)
}

func ValidShowtime(showtime string) bool {
	return slices.Contains(showtimes, showtime)
}

// Dates returns the bookable days starting at from, formatted as ISO dates.
func Dates(from time.Time) []string {
	out := make([]string, 0, BookingDays)
	for i := range BookingDays {
		out = append(out, from.AddDate(0, 0, i).Format(DateLayout))
	}
	return out
}

func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
