package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"BattleFS/internal/platform/config"
	"BattleFS/internal/platform/server/handler/health"
	"BattleFS/internal/platform/server/handler/object"
	"BattleFS/internal/platform/server/handler/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	httpAddr string
	engine   *chi.Mux
	objects  *object.ObjectHandler
	store    *store.StoreHandler
	logger   *slog.Logger
}

func NewServer(cfg config.Config, objects *object.ObjectHandler, stores *store.StoreHandler, logger *slog.Logger) Server {
	srv := Server{
		engine:   chi.NewRouter(),
		httpAddr: fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		objects:  objects,
		store:    stores,
		logger:   logger,
	}
	srv.engine.Use(middleware.RequestID)
	srv.engine.Use(middleware.Logger)
	srv.engine.Use(middleware.Recoverer)
	srv.registerRoutes()
	return srv
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts the listener down.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{Addr: s.httpAddr, Handler: s.engine}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server running", "addr", s.httpAddr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) registerRoutes() {
	s.engine.Get("/health", health.CheckHandler)

	s.engine.Post("/store/init", s.store.InitStore)
	s.engine.Post("/store/load", s.store.LoadDirectory)

	s.engine.Get("/objects", s.objects.ListObjects)
	s.engine.Post("/objects", s.objects.CreateObject)
	s.engine.Get("/objects/*", s.objects.ReadObject)
	s.engine.Delete("/objects/*", s.objects.DeleteObject)
}
