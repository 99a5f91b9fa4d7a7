package booking

import (
	"sync"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

// Field sets one booking field. Fields passed to a single Update are applied
// in order, so the last write to a field wins.
type Field func(b *domain.Booking)

func SetMovie(m *domain.Movie) Field {
	return func(b *domain.Booking) { b.Movie = m }
}

func SetTheater(t *domain.Theater) Field {
	return func(b *domain.Booking) { b.Theater = t }
}

func SetShowtime(showtime string) Field {
	return func(b *domain.Booking) { b.Showtime = showtime }
}

func SetDate(date string) Field {
	return func(b *domain.Booking) { b.Date = date }
}

func SetSeats(seats []domain.Seat, totalPrice int) Field {
	return func(b *domain.Booking) {
		b.Seats = append([]domain.Seat(nil), seats...)
		b.TotalPrice = totalPrice
	}
}

func SetPromo(code string, discount int) Field {
	return func(b *domain.Booking) {
		b.PromoCode = code
		b.Discount = discount
	}
}

func SetPayment(p *domain.Payment) Field {
	return func(b *domain.Booking) {
		paidAt := p.CreatedAt
		b.PaymentMethod = p.Method
		b.PaymentID = p.ID
		b.PaymentStatus = p.Status
		b.PaidAt = &paidAt
		b.FinalAmount = p.Amount
	}
}

type Listener func(b domain.Booking)

// Store holds one session's in-progress booking. It does no validation;
// callers check the wizard steps with CanEnter.
type Store struct {
	mu        sync.Mutex
	booking   domain.Booking
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{
		booking:   empty(),
		listeners: make(map[int]Listener),
	}
}

func (s *Store) Booking() domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.booking)
}

func (s *Store) Update(fields ...Field) {
	s.mu.Lock()
	for _, f := range fields {
		f(&s.booking)
	}
	b, ls := snapshot(s.booking), s.listenersLocked()
	s.mu.Unlock()

	notify(ls, b)
}

// Clear resets the booking to its empty defaults, as on logout or after
// the confirmation step.
func (s *Store) Clear() {
	s.mu.Lock()
	s.booking = empty()
	b, ls := snapshot(s.booking), s.listenersLocked()
	s.mu.Unlock()

	notify(ls, b)
}

// Subscribe registers l for every change. The returned func removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) listenersLocked() []Listener {
	ls := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextID; i++ {
		if l, ok := s.listeners[i]; ok {
			ls = append(ls, l)
		}
	}
	return ls
}

func notify(ls []Listener, b domain.Booking) {
	for _, l := range ls {
		l(b)
	}
}

func empty() domain.Booking {
	return domain.Booking{Seats: []domain.Seat{}}
}

func snapshot(b domain.Booking) domain.Booking {
	b.Seats = append([]domain.Seat{}, b.Seats...)
	if b.PaidAt != nil {
		t := *b.PaidAt
		b.PaidAt = &t
	}
	return b
}
