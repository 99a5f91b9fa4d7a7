package handler

import (
	"net/http"

	"github.com/stpnv0/CinemaDistrict/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) RecentSearches(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	searches, err := h.searchService.Recent(c.Request.Context(), who.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchesResponse{Searches: searches})
}

func (h *Handler) AddSearch(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	searches, err := h.searchService.Add(c.Request.Context(), who.UserID, req.Query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchesResponse{Searches: searches})
}

func (h *Handler) ClearSearches(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	if err := h.searchService.Clear(c.Request.Context(), who.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchesResponse{Searches: []string{}})
}
