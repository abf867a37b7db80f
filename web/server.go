//go:build !test

/* server.go
 * Contains the HTTP server Start function that listens for incoming connections.
 * Excluded from test coverage as it blocks and requires real network binding.
 */

package web

import (
	"log"
	"net/http"
	"time"
)

// Start initializes and starts the HTTP server with the given configuration
func Start(cfg Config) error {
	s := &Server{
		store: cfg.Store,
	}

	mux := http.NewServeMux()
	// bind handler methods that have access to s.store
	mux.HandleFunc("/feed", s.FeedHandler)
	mux.HandleFunc("/teams", s.TeamsHandler)
	mux.HandleFunc("/proxy/logo", s.LogoProxyHandler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Println("HTTP server listening on", cfg.Addr)
	return srv.ListenAndServe()
}
