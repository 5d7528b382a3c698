package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// statusFor maps error kinds onto HTTP status codes.
func statusFor(k Kind) int {
	switch k {
	case KindValidation, KindForeignKey:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// HTTPErrorHandler returns an echo error handler that renders taxonomy
// errors as JSON with the matching status code. Errors outside the taxonomy
// become opaque 500s and are logged with the request id.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ae *Error
		if errors.As(err, &ae) {
			_ = c.JSON(statusFor(ae.Kind), errorBody{Error: ae.Kind.String(), Detail: ae.Message})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			detail := http.StatusText(he.Code)
			if msg, ok := he.Message.(string); ok {
				detail = msg
			}
			_ = c.JSON(he.Code, errorBody{Error: "http", Detail: detail})
			return
		}

		rid, _ := c.Get("request_id").(string)
		logger.Error().Err(err).
			Str("request_id", rid).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, errorBody{Error: "internal", Detail: "internal server error"})
	}
}
