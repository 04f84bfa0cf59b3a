package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vietpass/vietpass/internal/checkout"
)

// RegisterCheckoutRoutes wires the pass purchase endpoint. Idempotency is
// scoped here: resubmitting the same Idempotency-Key replays the original
// outcome instead of charging twice.
func RegisterCheckoutRoutes(r fiber.Router, h *checkout.Handler, idem fiber.Handler) {
	if idem != nil {
		r.Post("/checkout", idem, h.Purchase)
	} else {
		r.Post("/checkout", h.Purchase)
	}
}
