package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRatingNotFound = errors.New("rating not found")
	ErrKeyNotFound    = errors.New("key not found")
)

var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

var (
	ErrShowNotSelected  = errors.New("please select a movie, theater, date and showtime")
	ErrNoSeatsSelected  = errors.New("please select at least one seat")
	ErrSeatLimitReached = errors.New("maximum 8 seats can be selected")
	ErrSeatOccupied     = errors.New("seat is already occupied")
	ErrUnknownSeat      = errors.New("unknown seat")
	ErrPaymentRequired  = errors.New("payment has not been completed")
	ErrInvalidPromo     = errors.New("invalid promo code")
	ErrPromoMinimum     = errors.New("minimum booking amount not reached for this promo code")
)

var (
	ErrPaymentFailed = errors.New("payment failed, please try again")
)

var (
	ErrValidation = errors.New("validation error")
)
