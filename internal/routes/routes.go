package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/vietpass/vietpass/internal/auth"
	"github.com/vietpass/vietpass/internal/checkout"
	"github.com/vietpass/vietpass/internal/config"
	"github.com/vietpass/vietpass/internal/membership"
	"github.com/vietpass/vietpass/internal/middleware"
	"github.com/vietpass/vietpass/internal/notification"
	"github.com/vietpass/vietpass/internal/partners"
	"github.com/vietpass/vietpass/internal/pass"
	"github.com/vietpass/vietpass/internal/session"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger

	// Provider overrides the identity provider; tests inject their own.
	// Nil gets the simulated provider.
	Provider auth.Provider
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	app.Use(middleware.Session(func(token string) (string, error) {
		return auth.ParseSessionToken(d.Cfg.SessionSecret, token)
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Stores
	var store session.Store
	if d.Cache != nil {
		store = session.NewRedisStore(d.Cache, d.Cfg.SessionTTL)
	} else {
		store = session.NewMemoryStore()
	}

	var records pass.Repository
	if d.DB != nil {
		records = pass.NewPostgresRepository(d.DB)
	} else {
		records = pass.NewMemoryRepository()
	}

	// Services and handlers
	notifier := notification.NewLoggerNotifier(d.Logger)

	provider := d.Provider
	if provider == nil {
		provider = auth.NewStaticProvider(0)
	}
	authClient := auth.NewClient(provider, store, auth.RetryPolicy{
		Interval:    d.Cfg.LoginRetryInterval,
		MaxAttempts: d.Cfg.LoginRetryMaxAttempts,
	})
	authHandler := auth.NewHandler(authClient, d.Cfg)

	minter := checkout.StaticMinter{
		ContractAddress: d.Cfg.ContractAddress,
		Network:         d.Cfg.Network,
		Validity:        d.Cfg.PassValidity,
	}
	checkoutSvc, err := checkout.NewService(d.Cfg, store, checkout.NewStaticPaymentProvider(), minter, records, notifier)
	if err != nil {
		return err
	}
	checkoutHandler := checkout.NewHandler(checkoutSvc)

	gate := membership.NewGate(store, nil)
	dashboardHandler := membership.NewHandler(gate)
	partnersHandler := partners.NewHandler(partners.Default(), gate)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(api, authHandler, rateLimiter)

	var idem fiber.Handler
	if d.Cache != nil {
		idem = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}
	RegisterCheckoutRoutes(api, checkoutHandler, idem)
	RegisterDashboardRoutes(api, dashboardHandler)
	RegisterPartnerRoutes(api, partnersHandler)
	RegisterSupportRoutes(api, records)

	return nil
}
