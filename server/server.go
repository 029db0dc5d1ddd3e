// Package server assembles the timesense HTTP server.
package server

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/hrygo/timesense/internal/profile"
	"github.com/hrygo/timesense/server/lunar"
	apiv1 "github.com/hrygo/timesense/server/router/api/v1"
)

// Server is the timesense HTTP server.
type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
}

// NewServer creates a server for the given profile.
func NewServer(p *profile.Profile) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := apiv1.NewAPIV1Service(p, lunar.NewConverter())
	api.RegisterRoutes(e)

	return &Server{
		Profile:    p,
		echoServer: e,
	}
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	slog.Info("timesense server starting",
		"addr", s.Profile.ListenAddr(),
		"mode", s.Profile.Mode,
		"version", s.Profile.Version,
	)
	return s.echoServer.Start(s.Profile.ListenAddr())
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) {
	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
	slog.Info("timesense server stopped")
}
