package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "swasthya-backend/internal/adapter/middleware"
	schemeuc "swasthya-backend/internal/usecase/scheme"
)

type SchemeHandler struct{ uc *schemeuc.Usecase }

func NewSchemeHandler(uc *schemeuc.Usecase) *SchemeHandler { return &SchemeHandler{uc: uc} }

type createSchemeReq struct {
	Name                string   `json:"name"                 validate:"required"`
	Description         string   `json:"description"          validate:"required"`
	EligibilityCriteria []string `json:"eligibility_criteria"`
	MaxCoverage         int64    `json:"max_coverage"         validate:"gte=0"`
	IsActive            bool     `json:"is_active"`
}

func (h *SchemeHandler) Create(c echo.Context) error {
	var req createSchemeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	caller := mw.CurrentUser(c)
	dto, err := h.uc.Create(c.Request().Context(), schemeuc.CreateInput{
		Name:                req.Name,
		Description:         req.Description,
		EligibilityCriteria: req.EligibilityCriteria,
		MaxCoverage:         req.MaxCoverage,
		IsActive:            req.IsActive,
		CreatedBy:           caller.Name,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateSchemeReq struct {
	Name                *string   `json:"name"`
	Description         *string   `json:"description"`
	EligibilityCriteria *[]string `json:"eligibility_criteria"`
	MaxCoverage         *int64    `json:"max_coverage"`
	IsActive            *bool     `json:"is_active"`
}

func (h *SchemeHandler) Update(c echo.Context) error {
	schemeID := c.Param("scheme_id")
	if schemeID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing scheme_id path param"})
	}
	var req updateSchemeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Update(c.Request().Context(), schemeID, schemeuc.UpdateInput{
		Name:                req.Name,
		Description:         req.Description,
		EligibilityCriteria: req.EligibilityCriteria,
		MaxCoverage:         req.MaxCoverage,
		IsActive:            req.IsActive,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SchemeHandler) Delete(c echo.Context) error {
	schemeID := c.Param("scheme_id")
	if schemeID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing scheme_id path param"})
	}
	if err := h.uc.Delete(c.Request().Context(), schemeID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListActive returns the schemes offered when submitting a patient.
func (h *SchemeHandler) ListActive(c echo.Context) error {
	dtos, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// ListAll is the management view: inactive schemes included.
func (h *SchemeHandler) ListAll(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
