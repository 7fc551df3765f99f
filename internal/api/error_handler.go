package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to status codes and renders {"error": "<message>"}. Failures the
// client cannot act on are logged and answered with a generic message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (router 404/405, invalid payload).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	switch {
	case errors.Is(err, domain.ErrStudentNotFound):
		return http.StatusNotFound, domain.ErrStudentNotFound.Error()
	case errors.Is(err, domain.ErrTeacherNotFound):
		return http.StatusNotFound, domain.ErrTeacherNotFound.Error()
	case errors.Is(err, domain.ErrEnrollmentCodeTaken):
		return http.StatusConflict, domain.ErrEnrollmentCodeTaken.Error()
	case errors.Is(err, domain.ErrEmployeeCodeTaken):
		return http.StatusConflict, domain.ErrEmployeeCodeTaken.Error()
	case errors.Is(err, domain.ErrCredentialMismatch):
		return http.StatusBadRequest, domain.ErrCredentialMismatch.Error()
	case errors.Is(err, domain.ErrInvalidSession):
		return http.StatusBadRequest, domain.ErrInvalidSession.Error()
	}

	var ext *domain.ExternalError
	if errors.As(err, &ext) {
		msg := domain.ErrExternalChannel.Error()
		if errors.Is(err, domain.ErrExternalTimeout) {
			msg = domain.ErrExternalTimeout.Error()
		}
		log.Error().
			Err(ext.Err).
			Str("op", ext.Op).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg(msg)
		return http.StatusInternalServerError, msg
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
