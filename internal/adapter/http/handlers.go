package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the unauthenticated service endpoints.
type Handler struct{ store string }

func NewHandler(store string) *Handler { return &Handler{store: store} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "swasthya-backend",
		"store":   h.store,
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
