package handlers

import (
	"errors"
	"net/http"

	request "cotizador_taller/internal/adapter/http/dto/request"
	response "cotizador_taller/internal/adapter/http/dto/response"
	"cotizador_taller/internal/usecase"
	"cotizador_taller/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges the shared admin password for a bearer token.
//
//	@Summary	Admin login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.LoginRequest	true	"Admin password"
//	@Success	200		{object}	response.TokenResponse
//	@Failure	401		{object}	pkg.HTTPError
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if !bindJSON(c, &payload) {
		return
	}

	token, err := h.usecase.Login(payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("[auth][handler] login rejected")
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuthToken(token))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAuthNotConfigured):
		return pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Admin access is not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
