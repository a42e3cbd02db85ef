// Package server runs the HTTP transport of the notes API and shuts it down
// gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
