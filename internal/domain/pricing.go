package domain

type PromoType string

const (
	PromoPercentage PromoType = "percentage"
	PromoFixed      PromoType = "fixed"
)

type PromoCode struct {
	Code        string    `json:"code"`
	Discount    int       `json:"discount"`
	Type        PromoType `json:"type"`
	Description string    `json:"description"`
	MinAmount   int       `json:"minAmount,omitempty"`
}

type PromoStatus string

const (
	PromoNone         PromoStatus = "none"
	PromoApplied      PromoStatus = "applied"
	PromoInvalid      PromoStatus = "invalid"
	PromoBelowMinimum PromoStatus = "below_minimum"
)

type Totals struct {
	Subtotal       int    `json:"subtotal"`
	ConvenienceFee int    `json:"convenienceFee"`
	Taxes          int    `json:"taxes"`
	Discount       int    `json:"discount"`
	Total          int    `json:"total"`
	PromoCode      string `json:"promoCode,omitempty"`
}

type Quote struct {
	Booking     Booking
	Totals      Totals
	PromoStatus PromoStatus
}
