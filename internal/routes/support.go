package routes

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vietpass/vietpass/internal/pass"
)

// RegisterSupportRoutes exposes the captured-but-unissued backlog so support
// can work the manual recovery queue.
func RegisterSupportRoutes(r fiber.Router, records pass.Repository) {
	r.Get("/support/issuance-failures", func(c *fiber.Ctx) error {
		stuck, err := records.ListByStatus(c.UserContext(), pass.StatusCapturedUnissued)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		type failure struct {
			ID              string    `json:"id"`
			OwnerEmail      string    `json:"owner_email"`
			PaymentIntentID string    `json:"payment_intent_id"`
			CreatedAt       time.Time `json:"created_at"`
		}
		out := make([]failure, 0, len(stuck))
		for _, rec := range stuck {
			out = append(out, failure{
				ID:              rec.ID,
				OwnerEmail:      rec.OwnerEmail,
				PaymentIntentID: rec.PaymentIntentID,
				CreatedAt:       rec.CreatedAt,
			})
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"failures": out})
	})
}
