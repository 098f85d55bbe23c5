package routes

import (
	"log/slog"
	"net/http"

	_ "github.com/Dosada05/tennis-finals/docs"
	"github.com/Dosada05/tennis-finals/handlers"
	"github.com/Dosada05/tennis-finals/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Tournament *handlers.TournamentHandler
	Match      *handlers.MatchHandler
	Player     *handlers.PlayerHandler
	WebSocket  *handlers.WebSocketHandler
}

func SetupRoutes(
	router *chi.Mux,
	h Handlers,
	tokenParser middleware.TokenParser,
	allowedOrigins []string,
	logger *slog.Logger,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	router.Get("/ws", h.WebSocket.ServeWs)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokenParser, logger))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/status", h.Auth.Status)
		})

		r.Route("/tournament", func(r chi.Router) {
			r.Get("/info", h.Tournament.GetInfo)
			r.Get("/schedule", h.Tournament.GetSchedule)
			r.Get("/status", h.Tournament.GetStatus)
			r.With(middleware.RequireAdmin).Post("/new", h.Tournament.CreateTournament)
		})

		r.Get("/results", h.Tournament.GetResults)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/matches/{matchID}", h.Match.OpenMatch)
			r.Post("/match/submit", h.Match.SubmitMatch)
			r.Post("/playoffs/setup", h.Tournament.SetupPlayoffs)
			r.Post("/playoffs/match", h.Match.SubmitPlayoffMatch)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Player.ListPlayers)
			r.Get("/{name}", h.Player.GetPlayerStats)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", h.Player.CreatePlayer)
				r.Put("/{name}", h.Player.UpdatePlayer)
				r.Delete("/{name}", h.Player.DeletePlayer)
			})
		})
	})
}
