package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vietpass/vietpass/internal/partners"
)

// RegisterPartnerRoutes wires the partner directory endpoint.
func RegisterPartnerRoutes(r fiber.Router, h *partners.Handler) {
	r.Get("/partners", h.List)
}
