package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	patientDomain "swasthya-backend/internal/domain/patient"
	schemeDomain "swasthya-backend/internal/domain/scheme"
)

// ---- helpers ----

// writeDomainError maps core error kinds onto HTTP statuses:
// validation → 422, unknown id → 404, non-pending transition → 409,
// decision at the wrong level → 403.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, patientDomain.ErrValidation), errors.Is(err, schemeDomain.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, patientDomain.ErrNotFound), errors.Is(err, schemeDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, patientDomain.ErrNotPending):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, patientDomain.ErrWrongLevel):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
