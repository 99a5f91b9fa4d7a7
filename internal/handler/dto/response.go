package dto

import (
	"fmt"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

type VerifyResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ShowtimesResponse struct {
	Showtimes []string `json:"showtimes"`
	Dates     []string `json:"dates"`
}

type SeatMapResponse struct {
	Rows     [][]domain.Seat `json:"rows"`
	MaxSeats int             `json:"maxSeats"`
}

type QuoteResponse struct {
	Booking      domain.Booking `json:"booking"`
	Totals       domain.Totals  `json:"totals"`
	PromoStatus  string         `json:"promoStatus"`
	PromoMessage string         `json:"promoMessage,omitempty"`
}

type SearchesResponse struct {
	Searches []string `json:"searches"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func ToQuoteResponse(q *domain.Quote, minAmount int) QuoteResponse {
	resp := QuoteResponse{
		Booking:     q.Booking,
		Totals:      q.Totals,
		PromoStatus: string(q.PromoStatus),
	}

	switch q.PromoStatus {
	case domain.PromoApplied:
		resp.PromoMessage = fmt.Sprintf("Promo code applied! You saved ₹%d", q.Totals.Discount)
	case domain.PromoInvalid:
		resp.PromoMessage = "Invalid promo code"
	case domain.PromoBelowMinimum:
		resp.PromoMessage = fmt.Sprintf("Minimum booking amount of ₹%d required for this promo code", minAmount)
	}

	return resp
}
