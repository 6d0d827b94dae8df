package http

import (
	"context"
	"net/http"

	"github.com/smartshop-tech/go-backend/internal/cfg"
)

type Server struct {
	httpServer *http.Server
}

// NewServer настраивает HTTP-сервер с таймаутами из конфигурации.
// WriteTimeout действует на все ручки, кроме потока событий корзины:
// тот снимает дедлайн записи на своём соединении сам.
func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
