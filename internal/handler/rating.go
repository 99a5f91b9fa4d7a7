package handler

import (
	"net/http"
	"strconv"

	"github.com/stpnv0/CinemaDistrict/internal/catalog"
	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) RateMovie(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	title := req.MovieTitle
	if m, found := catalog.Movie(movieID); found && title == "" {
		title = m.Title
	}

	summary, err := h.ratingService.Rate(c.Request.Context(), domain.RatingInput{
		MovieID:    movieID,
		UserID:     who.UserID,
		Rating:     req.Rating,
		Review:     req.Review,
		MovieTitle: title,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) MovieRatings(c *ginext.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	summary, err := h.ratingService.Summary(c.Request.Context(), movieID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) MyRating(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	rating, err := h.ratingService.UserRating(c.Request.Context(), movieID, who.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

func movieIDParam(c *ginext.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid movie id"})
		return 0, false
	}
	return id, true
}
