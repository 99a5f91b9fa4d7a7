package domain

import "time"

type SeatTier string

const (
	TierVIP      SeatTier = "VIP"
	TierPremium  SeatTier = "Premium"
	TierStandard SeatTier = "Standard"
	TierEconomy  SeatTier = "Economy"
)

type Seat struct {
	ID         string   `json:"id"`
	Row        string   `json:"row"`
	Number     int      `json:"number"`
	IsOccupied bool     `json:"isOccupied"`
	Price      int      `json:"price"`
	Tier       SeatTier `json:"tier"`
}

type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	ReleaseYear int     `json:"releaseYear,omitempty"`
	Genre       string  `json:"genre,omitempty"`
}

type Theater struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location,omitempty"`
	Screens   int      `json:"screens,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

type PaymentStatus string

const PaymentCompleted PaymentStatus = "completed"

// Booking is the in-progress booking carried through the wizard steps.
type Booking struct {
	Movie         *Movie        `json:"movie"`
	Theater       *Theater      `json:"theater"`
	Showtime      string        `json:"showtime"`
	Date          string        `json:"date"`
	Seats         []Seat        `json:"seats"`
	TotalPrice    int           `json:"totalPrice"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	PaymentID     string        `json:"paymentId,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	PaidAt        *time.Time    `json:"paymentTimestamp,omitempty"`
	FinalAmount   int           `json:"finalAmount,omitempty"`
	PromoCode     string        `json:"promoCode,omitempty"`
	Discount      int           `json:"discount,omitempty"`
}

// SeatIDs returns the ids of the booked seats in selection order.
func (b *Booking) SeatIDs() []string {
	ids := make([]string, 0, len(b.Seats))
	for _, s := range b.Seats {
		ids = append(ids, s.ID)
	}
	return ids
}

// BookingDraft is what a client submits for pricing or checkout.
type BookingDraft struct {
	Movie     *Movie
	Theater   *Theater
	Showtime  string
	Date      string
	SeatIDs   []string
	PromoCode string
}

type Payment struct {
	ID        string
	Method    string
	Amount    int
	Status    PaymentStatus
	CreatedAt time.Time
}

type Confirmation struct {
	BookingID string  `json:"bookingId"`
	Booking   Booking `json:"booking"`
	Totals    Totals  `json:"totals"`
}
