package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bizdesk/internal/delivery/http/response"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	writer *response.Writer
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(writer *response.Writer) *HealthHandler {
	return &HealthHandler{writer: writer}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	return h.writer.Status(c, http.StatusOK, "ok")
}
