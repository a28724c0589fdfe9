package handlers

import (
	"errors"
	"net/http"

	request "diamond_exteriors/internal/adapter/http/dto/request"
	response "diamond_exteriors/internal/adapter/http/dto/response"
	"diamond_exteriors/internal/usecase"
	"diamond_exteriors/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges the admin password for a session token. Logout is a
// client-side token discard; there is no server-side session registry.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := h.usecase.Login(payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.LoginResponse{Token: token})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPassword):
		return pkg.NewDomainErrorSimple("INVALID_PASSWORD", "Invalid password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAuthNotConfigured):
		return pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Admin access is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
