package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/pkg/validate"
)

type errorResponse struct {
	Message string    `json:"message"`
	Kind    errs.Kind `json:"kind"`
	Fields  []string  `json:"fields,omitempty"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:          http.StatusNotFound,
	errs.KindMemberBlocked:     http.StatusConflict,
	errs.KindLoanLimitExceeded: http.StatusConflict,
	errs.KindBookUnavailable:   http.StatusConflict,
	errs.KindAlreadyReturned:   http.StatusConflict,
	errs.KindAlreadyPaid:       http.StatusConflict,
	errs.KindInvalidState:      http.StatusConflict,
	errs.KindDuplicatePending:  http.StatusConflict,
	errs.KindValidation:        http.StatusBadRequest,
	errs.KindForbidden:         http.StatusForbidden,
	errs.KindUnauthorized:      http.StatusUnauthorized,
}

// fail turns a service error into an HTTP error. Unclassified errors are logged and
// reported as internal without detail.
func (h *Handler) fail(c echo.Context, err error) error {
	e, ok := errs.As(err)
	if !ok {
		h.log.Error("internal error",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errorResponse{
			Message: errs.ErrInternal.Error(),
			Kind:    errs.KindInternal,
		})
	}
	status, ok := kindStatus[e.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	return echo.NewHTTPError(status, errorResponse{
		Message: e.Error(),
		Kind:    e.Kind,
		Fields:  e.Fields,
	})
}

func (h *Handler) badRequest(err error, fallback ...string) error {
	fields := validate.Fields(err)
	if len(fields) == 0 {
		fields = fallback
	}
	e := errs.Validation(fields...)
	return echo.NewHTTPError(http.StatusBadRequest, errorResponse{
		Message: e.Error(),
		Kind:    e.Kind,
		Fields:  e.Fields,
	})
}
