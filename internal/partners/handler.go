package partners

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vietpass/vietpass/internal/membership"
	"github.com/vietpass/vietpass/internal/middleware"
)

// Handler serves the partner directory, gated on an active membership.
type Handler struct {
	catalog *Catalog
	gate    *membership.Gate
}

// NewHandler constructs a partner directory handler.
func NewHandler(catalog *Catalog, gate *membership.Gate) *Handler {
	return &Handler{catalog: catalog, gate: gate}
}

// List returns partners for the requested category. Only sessions the gate
// reports Active may see the directory.
func (h *Handler) List(c *fiber.Ctx) error {
	dec, err := h.gate.Evaluate(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if dec.State != membership.StateActive {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{
			"state":   dec.State,
			"message": "an active pass is required to browse partners",
		})
	}

	category := c.Query("category", CategoryAll)
	entries := h.catalog.Filter(category)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"category": category,
		"partners": entries,
	})
}
