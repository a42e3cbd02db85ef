// Package http is the REST transport of the notes server.
//
// Routes are wired in [Handler.Init]. Every response, successful or not, is
// a JSON envelope with "error" and "message" fields. Authentication, request
// tracing, access logging and gzip are handled by middleware before a
// request reaches the service layer.
package http
