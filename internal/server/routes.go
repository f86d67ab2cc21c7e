package server

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"bombtrivia/internal/config"
	"bombtrivia/internal/db"
	"bombtrivia/internal/game"
	"bombtrivia/internal/questions"
	"bombtrivia/internal/rooms"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/lmittmann/tint"
)

func Run() error {
	appCfg := config.Load()

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	gameCfg := game.Config{
		RoundSeconds: appCfg.RoundSeconds,
		TickInterval: 1 * time.Second,
	}

	srv := &Server{
		Rooms:   rooms.NewStore(gameCfg, questions.NewBank()),
		GameCfg: gameCfg,
	}

	// Optional database connection
	if appCfg.DatabaseURL != "" {
		database, err := db.Connect(appCfg.DatabaseURL)
		if err != nil {
			slog.Warn("failed to connect to database, running without match history", "error", err)
		} else {
			if err := database.Migrate(); err != nil {
				slog.Warn("migration failed", "error", err)
			}
			srv.DB = database
			srv.Eliminations = make(chan db.EliminationEvent, 256)
			go eliminationBatchWriter(database, srv.Eliminations)
			slog.Info("database connected and migrations applied")
		}
	} else {
		slog.Info("DATABASE_URL not set, running without match history")
	}

	addr := "0.0.0.0:" + appCfg.Port
	slog.Info("server listening", "addr", addr)
	return http.ListenAndServe(addr, srv.routes())
}

func (s *Server) routes() http.Handler {
	mux := chi.NewRouter()

	// The reference client is served from a different origin
	mux.Use(cors.AllowAll().Handler)

	mux.Get("/ws", s.handleWS)
	mux.Get("/health", s.handleHealth)
	mux.Get("/rooms", s.handleListRooms)

	mux.Route("/stats", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/matches", s.handleRecentMatches)
		r.Get("/players/{name}", s.handlePlayerStats)
	})

	return mux
}
