package httpserver

import (
	"net/http"

	"github.com/govalues/daxie/internal/config"
)

// New builds an HTTP server from the server section of the configuration.
func New(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
