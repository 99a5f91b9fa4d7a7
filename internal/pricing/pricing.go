package pricing

import (
	"strings"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

const (
	convenienceFeePercent = 2
	taxPercent            = 18
)

var promoCodes = map[string]domain.PromoCode{
	"FIRST10": {
		Code:        "FIRST10",
		Discount:    10,
		Type:        domain.PromoPercentage,
		Description: "First booking discount",
	},
	"SAVE50": {
		Code:        "SAVE50",
		Discount:    50,
		Type:        domain.PromoFixed,
		Description: "₹50 off on bookings above ₹200",
		MinAmount:   200,
	},
	"WEEKEND20": {
		Code:        "WEEKEND20",
		Discount:    20,
		Type:        domain.PromoPercentage,
		Description: "Weekend special offer",
	},
	"STUDENT15": {
		Code:        "STUDENT15",
		Discount:    15,
		Type:        domain.PromoPercentage,
		Description: "Student discount",
	},
}

var promoOrder = []string{"FIRST10", "SAVE50", "WEEKEND20", "STUDENT15"}

// Promos lists the promo catalogue in a stable order.
func Promos() []domain.PromoCode {
	out := make([]domain.PromoCode, 0, len(promoOrder))
	for _, c := range promoOrder {
		out = append(out, promoCodes[c])
	}
	return out
}

// LookupPromo matches code case-insensitively.
func LookupPromo(code string) (domain.PromoCode, bool) {
	p, ok := promoCodes[normalize(code)]
	return p, ok
}

// Subtotal sums seat prices.
func Subtotal(seats []domain.Seat) int {
	total := 0
	for _, s := range seats {
		total += s.Price
	}
	return total
}

// Compute derives the price breakdown for seats. An unknown or
// inapplicable promo code never fails the computation: it yields a zero
// discount and is reported through the returned status.
func Compute(seats []domain.Seat, code string) (domain.Totals, domain.PromoStatus) {
	subtotal := Subtotal(seats)
	fee := percentOf(subtotal, convenienceFeePercent)
	taxes := percentOf(subtotal+fee, taxPercent)

	totals := domain.Totals{
		Subtotal:       subtotal,
		ConvenienceFee: fee,
		Taxes:          taxes,
	}

	status := domain.PromoNone
	if code = normalize(code); code != "" {
		totals.Discount, status = discount(subtotal, code)
		if status == domain.PromoApplied {
			totals.PromoCode = code
		}
	}

	totals.Total = max(subtotal+fee+taxes-totals.Discount, 0)

	return totals, status
}

func discount(subtotal int, code string) (int, domain.PromoStatus) {
	promo, ok := promoCodes[code]
	if !ok {
		return 0, domain.PromoInvalid
	}

	switch promo.Type {
	case domain.PromoPercentage:
		return percentOf(subtotal, promo.Discount), domain.PromoApplied
	case domain.PromoFixed:
		if promo.MinAmount > 0 && subtotal < promo.MinAmount {
			return 0, domain.PromoBelowMinimum
		}
		return promo.Discount, domain.PromoApplied
	default:
		return 0, domain.PromoInvalid
	}
}

// percentOf returns amount*pct/100 rounded half-up. Amounts are whole
// currency units and never negative.
func percentOf(amount, pct int) int {
	return (amount*pct + 50) / 100
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
