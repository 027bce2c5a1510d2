package routes

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-brackets/config"
	"github.com/Dosada05/tournament-brackets/handlers"
	"github.com/Dosada05/tournament-brackets/metrics"
	"github.com/Dosada05/tournament-brackets/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/tournament-brackets/docs"
)

type Handlers struct {
	Stage       *handlers.StageHandler
	Match       *handlers.MatchHandler
	Participant *handlers.ParticipantHandler
	Standings   *handlers.StandingsHandler
	WebSocket   *handlers.WebSocketHandler
	Health      *handlers.HealthHandler
}

func SetupRoutes(router chi.Router, cfg *config.Config, h Handlers, m *metrics.Metrics, logger *slog.Logger) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.Instrument(m))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", h.Health.Healthz)
	router.Method(http.MethodGet, "/metrics", m.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/ws/stages/{stageID}", h.WebSocket.ServeWs)

	// Изменяющие маршруты: токен (если задан секрет), роль и общий лимит
	writeLimit := middleware.RateLimit(cfg.WriteRateLimit, cfg.WriteRateBurst)
	writes := func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.JWTSecretKey))
		r.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleOrganizer))
		r.Use(writeLimit)
	}

	router.Route("/api", func(r chi.Router) {
		r.Route("/stages", func(r chi.Router) {
			r.Get("/", h.Stage.ListStages)
			r.Get("/{stageID}", h.Stage.GetStage)
			r.Get("/{stageID}/matches", h.Stage.ListStageMatches)
			r.Group(func(r chi.Router) {
				writes(r)
				r.Post("/", h.Stage.ImportStage)
				r.Delete("/{stageID}", h.Stage.DeleteStage)
			})
		})

		r.Get("/viewer-data/{stageID}", h.Stage.GetViewerData)

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.Match.ListMatches)
			r.Group(func(r chi.Router) {
				writes(r)
				r.Put("/{matchID}", h.Match.UpdateResult)
			})
		})

		r.Route("/participants", func(r chi.Router) {
			r.Get("/", h.Participant.ListParticipants)
			r.Get("/{participantID}", h.Participant.GetParticipant)
			r.Group(func(r chi.Router) {
				writes(r)
				r.Post("/", h.Participant.CreateParticipant)
				r.Delete("/{participantID}", h.Participant.DeleteParticipant)
			})
		})

		r.Route("/standings/{stageID}", func(r chi.Router) {
			r.Get("/", h.Standings.GetStandings)
			r.Get("/stats", h.Standings.GetStandingsStats)
			r.Group(func(r chi.Router) {
				writes(r)
				r.Post("/export", h.Standings.ExportStandings)
			})
		})

		r.Get("/events/{eventName}/rankings", h.Standings.GetEventRankings)
	})
}
