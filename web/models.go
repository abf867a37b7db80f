package web

import (
	"esports-feeds/store"
)

// Config holds the configuration for the web server
type Config struct {
	Addr  string
	Store store.Interface
}

// Server is the HTTP server that handles feed requests
type Server struct {
	store store.Interface
}
