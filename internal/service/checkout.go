package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/CinemaDistrict/internal/booking"
	"github.com/stpnv0/CinemaDistrict/internal/catalog"
	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/payment"
	"github.com/stpnv0/CinemaDistrict/internal/pricing"
	"github.com/stpnv0/CinemaDistrict/internal/seating"
	"github.com/stpnv0/CinemaDistrict/internal/service/ports"
	"github.com/stpnv0/CinemaDistrict/internal/ticket"
	"github.com/wb-go/wbf/logger"
)

// CheckoutService walks a submitted booking through the wizard steps on
// the server. Nothing it builds is persisted.
type CheckoutService struct {
	seats    *seating.Map
	payments ports.PaymentGateway
	notifier ports.Notifier
	logger   logger.Logger
}

func NewCheckoutService(
	seats *seating.Map,
	payments ports.PaymentGateway,
	notifier ports.Notifier,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		seats:    seats,
		payments: payments,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *CheckoutService) SeatMap() [][]domain.Seat {
	return s.seats.Rows()
}

func (s *CheckoutService) Promos() []domain.PromoCode {
	return pricing.Promos()
}

// Quote prices a draft. An unusable promo code does not fail the quote,
// it is reported through Quote.PromoStatus.
func (s *CheckoutService) Quote(draft domain.BookingDraft) (*domain.Quote, error) {
	_, quote, err := s.prepare(draft)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *CheckoutService) Checkout(
	ctx context.Context,
	who domain.Identity,
	draft domain.BookingDraft,
	req payment.Request,
) (*domain.Confirmation, error) {
	store, quote, err := s.prepare(draft)
	if err != nil {
		return nil, err
	}

	switch quote.PromoStatus {
	case domain.PromoInvalid:
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrInvalidPromo)
	case domain.PromoBelowMinimum:
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrPromoMinimum)
	}

	unsubscribe := store.Subscribe(func(b domain.Booking) {
		s.logger.Debug("booking updated",
			logger.String("user_id", who.UserID),
			logger.String("payment_id", b.PaymentID),
			logger.String("payment_status", string(b.PaymentStatus)),
		)
	})
	defer unsubscribe()

	req.Amount = quote.Totals.Total
	paid, err := s.payments.Charge(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("charge: %w", err)
	}
	store.Update(booking.SetPayment(paid))

	b := store.Booking()
	if err = booking.CanEnter(b, booking.StepConfirmation); err != nil {
		return nil, err
	}

	c := &domain.Confirmation{
		BookingID: payment.NewBookingID(),
		Booking:   b,
		Totals:    quote.Totals,
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", c.BookingID),
		logger.String("user_id", who.UserID),
		logger.String("payment_id", paid.ID),
		logger.Int("seats", len(b.Seats)),
		logger.Int("total", quote.Totals.Total),
	)

	user := &domain.User{ID: who.UserID, Email: who.Email}
	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, c)

	return c, nil
}

// Ticket renders the PDF ticket for a confirmation returned by Checkout.
func (s *CheckoutService) Ticket(c *domain.Confirmation) ([]byte, error) {
	if c == nil || c.BookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", domain.ErrValidation)
	}

	if err := booking.CanEnter(c.Booking, booking.StepConfirmation); err != nil {
		return nil, err
	}

	pdf, err := ticket.Render(c)
	if err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}

	return pdf, nil
}

func (s *CheckoutService) prepare(draft domain.BookingDraft) (*booking.Store, *domain.Quote, error) {
	store := booking.NewStore()
	store.Update(
		booking.SetMovie(draft.Movie),
		booking.SetTheater(draft.Theater),
		booking.SetShowtime(strings.TrimSpace(draft.Showtime)),
		booking.SetDate(strings.TrimSpace(draft.Date)),
	)

	if err := booking.CanEnter(store.Booking(), booking.StepSeats); err != nil {
		return nil, nil, err
	}
	if !catalog.ValidDate(strings.TrimSpace(draft.Date)) {
		return nil, nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", domain.ErrValidation)
	}

	movie, ok := catalog.Movie(draft.Movie.ID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown movie %d", domain.ErrValidation, draft.Movie.ID)
	}
	theater, ok := catalog.Theater(draft.Theater.ID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown theater %d", domain.ErrValidation, draft.Theater.ID)
	}
	if showtime := strings.TrimSpace(draft.Showtime); !catalog.ValidShowtime(showtime) {
		return nil, nil, fmt.Errorf("%w: unknown showtime %q", domain.ErrValidation, showtime)
	}
	store.Update(booking.SetMovie(&movie), booking.SetTheater(&theater))

	sel, err := s.selection(draft.SeatIDs)
	if err != nil {
		return nil, nil, err
	}

	seats := sel.Seats()
	totals, status := pricing.Compute(seats, draft.PromoCode)
	store.Update(
		booking.SetSeats(seats, sel.Subtotal()),
		booking.SetPromo(totals.PromoCode, totals.Discount),
	)

	b := store.Booking()
	if err = booking.CanEnter(b, booking.StepPayment); err != nil {
		return nil, nil, err
	}

	return store, &domain.Quote{Booking: b, Totals: totals, PromoStatus: status}, nil
}

// selection replays ids as seat clicks. Anything but a fresh add means the
// client sent a seat it could not have picked.
func (s *CheckoutService) selection(ids []string) (*booking.Selection, error) {
	sel := booking.NewSelection(s.seats)

	for _, id := range ids {
		id = strings.ToUpper(strings.TrimSpace(id))

		switch sel.Toggle(id) {
		case booking.Added:
		case booking.Removed:
			return nil, fmt.Errorf("%w: seat %s is listed more than once", domain.ErrValidation, id)
		case booking.Occupied:
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrValidation, domain.ErrSeatOccupied, id)
		case booking.LimitReached:
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrSeatLimitReached)
		default:
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrValidation, domain.ErrUnknownSeat, id)
		}
	}

	return sel, nil
}
