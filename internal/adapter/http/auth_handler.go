package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	mw "swasthya-backend/internal/adapter/middleware"
	authuc "swasthya-backend/internal/usecase/auth"
)

type AuthHandler struct{ uc *authuc.Usecase }

func NewAuthHandler(uc *authuc.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	token, u, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authuc.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, loginResp{Token: token, User: u})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	token := mw.SessionToken(c)
	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, mw.CurrentUser(c))
}
