package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cotizador_taller/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// bindJSON binds the body and writes a 400 with per-field details when the
// payload does not pass validation. Callers return when it reports false.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	appErr := errInvalidPayload
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		appErr = appErr.WithDetails(fields)
	}
	writeError(c, appErr)
	return false
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().
			Err(appErr.Err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("[http][handler] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// pathParam returns a trimmed path parameter, or "" when blank.
func pathParam(c *gin.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(pathParam(c, name), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
