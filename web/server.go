package web

import (
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"pokedex/app"
	"pokedex/config"
)

// NewServer creates and configures the RWeb server around a loaded App
func NewServer(a *app.App, cfg *config.Config) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.LogLevel == "debug",
	})

	s.Use(rweb.RequestInfo)
	s.Use(SecurityHeadersMiddleware)
	s.Use(LoggingMiddleware)

	setupRoutes(s, a, cfg)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, address string) error {
	logger.Info("Pokedex server starting on", "address", address)
	return s.Run()
}
