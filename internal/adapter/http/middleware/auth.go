package middleware

import (
	"net/http"
	"strings"

	"cotizador_taller/internal/usecase"
	"cotizador_taller/pkg"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "claims"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// AdminAuth validates the Bearer token on every admin route.
func AdminAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := auth.ValidateToken(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil || claims.Role != usecase.AdminRole {
			appErr := pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
