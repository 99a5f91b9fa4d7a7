package dto

import (
	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/payment"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type BookingDraftRequest struct {
	Movie     *domain.Movie   `json:"movie"`
	Theater   *domain.Theater `json:"theater"`
	Showtime  string          `json:"showtime"`
	Date      string          `json:"date"`
	Seats     []string        `json:"seats"`
	PromoCode string          `json:"promoCode"`
}

func (r BookingDraftRequest) ToDomain() domain.BookingDraft {
	return domain.BookingDraft{
		Movie:     r.Movie,
		Theater:   r.Theater,
		Showtime:  r.Showtime,
		Date:      r.Date,
		SeatIDs:   r.Seats,
		PromoCode: r.PromoCode,
	}
}

type PaymentRequest struct {
	Method     string                     `json:"method"`
	Card       *payment.CardDetails       `json:"card"`
	UPI        *payment.UPIDetails        `json:"upi"`
	NetBanking *payment.NetBankingDetails `json:"netbanking"`
	Wallet     *payment.WalletDetails     `json:"wallet"`
}

func (r PaymentRequest) ToDomain() payment.Request {
	return payment.Request{
		Method:     payment.Method(r.Method),
		Card:       r.Card,
		UPI:        r.UPI,
		NetBanking: r.NetBanking,
		Wallet:     r.Wallet,
	}
}

type CheckoutRequest struct {
	Booking BookingDraftRequest `json:"booking"`
	Payment PaymentRequest      `json:"payment"`
}

type RateRequest struct {
	Rating     int    `json:"rating" binding:"required"`
	Review     string `json:"review"`
	MovieTitle string `json:"movieTitle"`
}

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}
