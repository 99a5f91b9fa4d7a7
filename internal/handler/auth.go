package handler

import (
	"net/http"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		User:    dto.ToUserResponse(res.User),
		Token:   res.Token,
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    dto.ToUserResponse(res.User),
		Token:   res.Token,
	})
}

// Logout only acknowledges: tokens are stateless and the client drops its
// copy.
func (h *Handler) Logout(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

func (h *Handler) Me(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(c.Request.Context(), who.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), who.UserID, domain.ProfileUpdate{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ChangePassword(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), who.UserID, domain.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}

func (h *Handler) Verify(c *ginext.Context) {
	who, ok := h.identity(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Message: "Token is valid",
		UserID:  who.UserID,
		Email:   who.Email,
	})
}
