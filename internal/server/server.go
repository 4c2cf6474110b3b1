package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/BrandishEconomy_Go/internal/dailybonus"
	"github.com/osse101/BrandishEconomy_Go/internal/database"
	"github.com/osse101/BrandishEconomy_Go/internal/guild"
	"github.com/osse101/BrandishEconomy_Go/internal/handler"
	"github.com/osse101/BrandishEconomy_Go/internal/inventory"
	"github.com/osse101/BrandishEconomy_Go/internal/item"
	"github.com/osse101/BrandishEconomy_Go/internal/metrics"
	"github.com/osse101/BrandishEconomy_Go/internal/player"
)

// Options configures the HTTP surface
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	RateLimit       int
	RateLimitWindow time.Duration
}

// Services groups the managers the routes dispatch to
type Services struct {
	Player    player.Service
	Inventory inventory.Service
	Daily     dailybonus.Service
	Item      item.Service
	Guild     guild.Service
}

type Server struct {
	httpServer *http.Server
}

// NewRouter builds the chi router with the full middleware stack and every route
func NewRouter(opts Options, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	guard := NewClientGuard(opts.RateLimit, opts.RateLimitWindow)

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, guard))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Post("/", handler.HandleCreatePlayer(svc.Player))
			r.Get("/", handler.HandleGetAllPlayers(svc.Player))
			r.Get("/by-discord/{discordID}", handler.HandleGetPlayerByDiscordID(svc.Player))

			r.Route("/{playerID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetPlayer(svc.Player))
				r.Get("/account", handler.HandleGetAccount(svc.Player))

				r.Get("/money", handler.HandleGetMoney(svc.Player))
				r.Put("/money", handler.HandleSetMoney(svc.Player))
				r.Post("/money/add", handler.HandleAddMoney(svc.Player))

				r.Get("/experience", handler.HandleGetExperience(svc.Player))
				r.Put("/experience", handler.HandleSetExperience(svc.Player))
				r.Post("/experience/add", handler.HandleAddExperience(svc.Player))

				r.Get("/guild", handler.HandleGetGuildID(svc.Player))
				r.Put("/guild", handler.HandleSetGuildID(svc.Player))

				r.Get("/daily", handler.HandleGetDailyStreak(svc.Daily))
				r.Post("/daily", handler.HandleClaimDaily(svc.Daily))
			})
		})

		r.Route("/inventory/{playerID}", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(svc.Inventory))
			r.Get("/{itemID}", handler.HandleGetInventoryItem(svc.Inventory))
			r.Post("/{itemID}", handler.HandleModifyItem(svc.Inventory))
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/", handler.HandleCreateItem(svc.Item))
			r.Get("/", handler.HandleGetItems(svc.Item))
			r.Get("/{itemID}", handler.HandleGetItem(svc.Item))
			r.Patch("/{itemID}", handler.HandleUpdateItem(svc.Item))
			r.Delete("/{itemID}", handler.HandleDeleteItem(svc.Item))
		})

		r.Route("/guilds", func(r chi.Router) {
			r.Post("/", handler.HandleCreateGuild(svc.Guild))
			r.Get("/{guildID}", handler.HandleGetGuild(svc.Guild))
		})
	})

	return r
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Start blocks serving HTTP until the server is stopped
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
