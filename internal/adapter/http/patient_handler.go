package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "swasthya-backend/internal/adapter/middleware"
	patientuc "swasthya-backend/internal/usecase/patient"
)

type PatientHandler struct{ uc *patientuc.Usecase }

func NewPatientHandler(uc *patientuc.Usecase) *PatientHandler { return &PatientHandler{uc: uc} }

type submitPatientReq struct {
	Name             string   `json:"name"              validate:"required"`
	Age              int      `json:"age"               validate:"required,gt=0"`
	Gender           string   `json:"gender"            validate:"required"`
	MedicalCondition string   `json:"medical_condition" validate:"required"`
	RequestedScheme  string   `json:"requested_scheme"  validate:"required"`
	Documents        []string `json:"documents"`
}

func (h *PatientHandler) Submit(c echo.Context) error {
	var req submitPatientReq
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
	dto, err := h.uc.Submit(c.Request().Context(), patientuc.SubmitInput{
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		MedicalCondition: req.MedicalCondition,
		RequestedScheme:  req.RequestedScheme,
		Documents:        req.Documents,
		SubmittedBy:      caller.Name,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// List returns the patients visible to the caller's role.
func (h *PatientHandler) List(c echo.Context) error {
	caller := mw.CurrentUser(c)
	dtos, err := h.uc.ListForRole(c.Request().Context(), caller.Role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *PatientHandler) Get(c echo.Context) error {
	patientID := c.Param("patient_id")
	if patientID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing patient_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), patientID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type approvePatientReq struct {
	Comments string `json:"comments"`
}

func (h *PatientHandler) Approve(c echo.Context) error {
	patientID := c.Param("patient_id")
	if patientID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing patient_id path param"})
	}
	var req approvePatientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	caller := mw.CurrentUser(c)
	level, _ := caller.Role.ApprovalLevel() // guaranteed by RequireApprover
	dto, err := h.uc.Approve(c.Request().Context(), patientuc.ApproveInput{
		PatientID:  patientID,
		ApprovedBy: caller.Name,
		Comments:   req.Comments,
		Level:      level,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectPatientReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *PatientHandler) Reject(c echo.Context) error {
	patientID := c.Param("patient_id")
	if patientID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing patient_id path param"})
	}
	var req rejectPatientReq
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
	level, _ := caller.Role.ApprovalLevel()
	dto, err := h.uc.Reject(c.Request().Context(), patientuc.RejectInput{
		PatientID:  patientID,
		RejectedBy: caller.Name,
		Reason:     req.Reason,
		Level:      level,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Statistics summarizes the store for the caller's role.
func (h *PatientHandler) Statistics(c echo.Context) error {
	caller := mw.CurrentUser(c)
	stats, err := h.uc.Statistics(c.Request().Context(), caller.Role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
