package response

import (
	"time"

	"cotizador_taller/internal/usecase"
)

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromAuthToken(t usecase.AuthToken) TokenResponse {
	return TokenResponse{AccessToken: t.AccessToken, TokenType: "Bearer", ExpiresAt: t.ExpiresAt}
}
