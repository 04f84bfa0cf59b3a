package checkout

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vietpass/vietpass/internal/middleware"
)

// Handler exposes the pass purchase endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a checkout handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Purchase processes a pass purchase for the authenticated session. Every
// failure response carries "retryable" so the client knows whether to
// re-enable its submit control or show the support path.
func (h *Handler) Purchase(c *fiber.Ctx) error {
	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	sid := middleware.SessionID(c)
	result, err := h.service.Purchase(c.UserContext(), sid, CardInput{
		Number: req.CardNumber,
		Expiry: req.Expiry,
		CVC:    req.CVC,
	})
	if err != nil {
		var declined *DeclinedError
		var unissued *CapturedNotIssuedError
		switch {
		case errors.Is(err, ErrNotAuthenticated):
			return fiber.NewError(http.StatusUnauthorized, "login required before checkout")
		case errors.As(err, &declined):
			return c.Status(http.StatusPaymentRequired).JSON(fiber.Map{
				"error":     "payment_declined",
				"reason":    declined.Reason,
				"retryable": true,
			})
		case errors.As(err, &unissued):
			return c.Status(http.StatusBadGateway).JSON(fiber.Map{
				"error":             "captured_not_issued",
				"message":           "your payment was captured but the pass could not be issued; support has been notified",
				"payment_intent_id": unissued.PaymentIntentID,
				"retryable":         false,
			})
		case errors.Is(err, ErrPaymentSetupFailed):
			return c.Status(http.StatusBadGateway).JSON(fiber.Map{
				"error":     "payment_setup_failed",
				"retryable": true,
			})
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(PurchaseResponse{
		Status:          "issued",
		TokenID:         result.Credential.TokenID,
		ContractAddress: result.Credential.ContractAddress,
		Network:         result.Credential.Network,
		MintedAt:        result.Credential.MintedAt,
		ExpiresAt:       result.Credential.ExpiresAt,
		PaymentIntentID: result.PaymentIntentID,
	})
}
