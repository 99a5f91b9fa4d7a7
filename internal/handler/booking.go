package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/booking"
	"github.com/stpnv0/CinemaDistrict/internal/catalog"
	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/handler/dto"
	"github.com/stpnv0/CinemaDistrict/internal/pricing"
	"github.com/wb-go/wbf/ginext"
)

// Catalog

func (h *Handler) ListMovies(c *ginext.Context) {
	c.JSON(http.StatusOK, catalog.Movies())
}

func (h *Handler) ListTheaters(c *ginext.Context) {
	c.JSON(http.StatusOK, catalog.Theaters())
}

func (h *Handler) ListShowtimes(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ShowtimesResponse{
		Showtimes: catalog.Showtimes(),
		Dates:     catalog.Dates(time.Now()),
	})
}

func (h *Handler) SeatMap(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.SeatMapResponse{
		Rows:     h.checkoutService.SeatMap(),
		MaxSeats: booking.MaxSeats,
	})
}

func (h *Handler) ListPromos(c *ginext.Context) {
	c.JSON(http.StatusOK, h.checkoutService.Promos())
}

// Bookings

func (h *Handler) Quote(c *ginext.Context) {
	var req dto.BookingDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quote, err := h.checkoutService.Quote(req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	promo, _ := pricing.LookupPromo(req.PromoCode)
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote, promo.MinAmount))
}

func (h *Handler) Checkout(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	confirmation, err := h.checkoutService.Checkout(
		c.Request.Context(),
		who,
		req.Booking.ToDomain(),
		req.Payment.ToDomain(),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}

func (h *Handler) Ticket(c *ginext.Context) {
	if _, ok := h.identity(c); !ok {
		return
	}

	var req domain.Confirmation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pdf, err := h.checkoutService.Ticket(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="ticket-%s.pdf"`, url.PathEscape(req.BookingID)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
