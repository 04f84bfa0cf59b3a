package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vietpass/vietpass/internal/membership"
)

// RegisterDashboardRoutes wires the gated dashboard endpoint.
func RegisterDashboardRoutes(r fiber.Router, h *membership.Handler) {
	r.Get("/dashboard", h.Dashboard)
}
