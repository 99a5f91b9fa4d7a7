package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/handler/dto"
	"github.com/stpnv0/CinemaDistrict/internal/health"
	"github.com/stpnv0/CinemaDistrict/internal/middleware"
	"github.com/stpnv0/CinemaDistrict/internal/payment"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgEmailTaken         = "User already exists with this email"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, userID string, input domain.ChangePasswordInput) error
}

type CheckoutSvc interface {
	SeatMap() [][]domain.Seat
	Promos() []domain.PromoCode
	Quote(draft domain.BookingDraft) (*domain.Quote, error)
	Checkout(ctx context.Context, who domain.Identity, draft domain.BookingDraft, req payment.Request) (*domain.Confirmation, error)
	Ticket(c *domain.Confirmation) ([]byte, error)
}

type RatingSvc interface {
	Rate(ctx context.Context, input domain.RatingInput) (*domain.RatingSummary, error)
	Summary(ctx context.Context, movieID int) (*domain.RatingSummary, error)
	UserRating(ctx context.Context, movieID int, userID string) (*domain.Rating, error)
}

type SearchSvc interface {
	Recent(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, query string) ([]string, error)
	Clear(ctx context.Context, userID string) error
}

type HealthReporter interface {
	Status() health.Status
}

type Handler struct {
	authService     AuthSvc
	checkoutService CheckoutSvc
	ratingService   RatingSvc
	searchService   SearchSvc
	health          HealthReporter
	logger          logger.Logger
}

func NewHandler(
	authService AuthSvc,
	checkoutService CheckoutSvc,
	ratingService RatingSvc,
	searchService SearchSvc,
	health HealthReporter,
	logger logger.Logger,
) *Handler {
	return &Handler{
		authService:     authService,
		checkoutService: checkoutService,
		ratingService:   ratingService,
		searchService:   searchService,
		health:          health,
		logger:          logger,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, h.health.Status())
}

// identity is only called behind middleware.Auth.
func (h *Handler) identity(c *ginext.Context) (domain.Identity, bool) {
	who, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Access token required"})
	}
	return who, ok
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRatingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidCredentials})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgEmailTaken})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: domain.ErrPaymentFailed.Error()})

	default:
		h.logger.LogAttrs(c.Request.Context(), logger.ErrorLevel, "request failed",
			logger.String("request_id", middleware.GetRequestID(c)),
			logger.String("path", c.Request.URL.Path),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
