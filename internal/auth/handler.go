package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vietpass/vietpass/internal/config"
	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/middleware"
)

var defaultScopes = []string{"openid", "email", "profile"}

// Handler exposes login/logout endpoints.
type Handler struct {
	client *Client
	cfg    config.Config
}

// NewHandler constructs an auth handler.
func NewHandler(client *Client, cfg config.Config) *Handler {
	return &Handler{client: client, cfg: cfg}
}

type loginRequest struct {
	Provider string `json:"provider"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type loginResponse struct {
	SessionToken string            `json:"session_token"`
	ExpiresIn    int64             `json:"expires_in"`
	User         identity.Identity `json:"user"`
}

// Login runs the social-login handshake and returns a signed session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	provider := req.Provider
	if provider == "" {
		provider = "google"
	}

	sid := uuid.NewString()
	id, err := h.client.Login(c.UserContext(), sid, LoginInput{
		Provider: provider,
		Scopes:   defaultScopes,
		Email:    req.Email,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrProviderUnavailable):
			return fiber.NewError(http.StatusServiceUnavailable, "login provider is not ready, try again shortly")
		case errors.Is(err, ErrLoginDenied):
			return fiber.NewError(http.StatusUnauthorized, "login was not completed")
		default:
			return fiber.NewError(http.StatusBadGateway, err.Error())
		}
	}

	token, err := SignSessionToken(h.cfg.SessionSecret, sid, id.Email, h.cfg.SessionTTL)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(loginResponse{
		SessionToken: token,
		ExpiresIn:    int64(h.cfg.SessionTTL.Seconds()),
		User:         id,
	})
}

// Logout clears the session. Idempotent: logging out twice, or without a
// session at all, still succeeds.
func (h *Handler) Logout(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)
	if sid != "" {
		if err := h.client.Logout(c.UserContext(), sid); err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}
