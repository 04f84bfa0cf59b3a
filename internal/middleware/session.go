package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const sessionIDLocal = "session_id"

// Session extracts and verifies the bearer session token, storing the session
// id in locals. It never rejects the request: routes that require a session
// decide for themselves, so the membership gate can report its own denial
// state instead of a blanket 401.
func Session(parse func(token string) (string, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			token := strings.TrimSpace(authz[len("Bearer "):])
			if sid, err := parse(token); err == nil {
				c.Locals(sessionIDLocal, sid)
			}
		}
		return c.Next()
	}
}

// SessionID returns the verified session id for the request, or "" when the
// request carried no valid session token.
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(sessionIDLocal).(string)
	return sid
}
