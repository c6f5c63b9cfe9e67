// Package server runs the journal's HTTP API together with its background
// workers and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
