// Package respond maps coded errors onto HTTP replies uniformly so
// workflow failures always reach the UI in a retryable shape.
package respond

import (
	"log/slog"
	"net/http"

	"librarydesk/util/apperr"

	"github.com/labstack/echo/v4"
)

func statusFor(code apperr.ErrCode) int {
	switch code {
	case apperr.ErrValidation:
		return http.StatusBadRequest
	case apperr.ErrAuthorization:
		return http.StatusForbidden
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrConflict, apperr.ErrAlreadyReturned, apperr.ErrStatusConflict:
		return http.StatusConflict
	case apperr.ErrPrecondition:
		return http.StatusPreconditionFailed
	case apperr.ErrTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Err logs and writes the error. Coded messages go out verbatim;
// anything uncoded stays a generic 500 line.
func Err(c echo.Context, log *slog.Logger, op string, err error) error {
	code := apperr.Code(err)
	log.Error(op, "err", err, "code", string(code))
	return c.JSON(statusFor(code), echo.Map{
		"message": apperr.Message(err),
		"code":    string(code),
	})
}

func Data(c echo.Context, status int, v any) error {
	return c.JSON(status, echo.Map{"data": v})
}
