package membership

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vietpass/vietpass/internal/middleware"
)

// Handler renders the dashboard decision as JSON.
type Handler struct {
	gate *Gate
}

// NewHandler constructs a dashboard handler.
func NewHandler(gate *Gate) *Handler {
	return &Handler{gate: gate}
}

// Dashboard evaluates the gate for the current session. The response always
// carries a state so the client can render the matching view; denial is data,
// not an HTTP error.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	dec, err := h.gate.Evaluate(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	switch dec.State {
	case StateActive:
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"state": dec.State,
			"member": fiber.Map{
				"label":          dec.MemberLabel,
				"email":          dec.Identity.Email,
				"wallet_address": dec.Identity.WalletAddress,
			},
			"pass": fiber.Map{
				"token_id":         dec.Credential.TokenID,
				"contract_address": dec.Credential.ContractAddress,
				"network":          dec.Credential.Network,
				"expires_at":       dec.Credential.ExpiresAt,
				"expires_label":    dec.ExpiryLabel,
			},
		})
	case StateExpired:
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"state":   dec.State,
			"message": "your pass expired on " + dec.ExpiryLabel + "; renew to regain access",
			"member":  fiber.Map{"label": dec.MemberLabel},
		})
	default:
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"state":   StateAccessDenied,
			"message": "login and purchase a pass to unlock the dashboard",
		})
	}
}
