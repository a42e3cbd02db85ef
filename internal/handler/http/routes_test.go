package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// protectedRoutes must all answer 401 without a token, proving they exist
// and sit behind the auth middleware.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/get-user"},
	{http.MethodGet, "/get-all-notes"},
	{http.MethodGet, "/search-notes?query=a"},
	{http.MethodPost, "/add-note"},
	{http.MethodPut, "/edit-note/n1"},
	{http.MethodDelete, "/delete-note/n1"},
	{http.MethodPut, "/update-note-pinned/n1"},
	{http.MethodPut, "/update-note-seen/n1"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := h.Init()

	for _, rc := range protectedRoutes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := doRequest(t, router, rc.method, rc.path, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.True(t, decodeEnvelope(t, rec).Error)
		})
	}
}

func TestInit_UnknownRouteAndMethod(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := h.Init()

	rec := doRequest(t, router, http.MethodGet, "/no-such-route", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/login", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := doRequest(t, h.Init(), http.MethodGet, "/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{
		CORSOrigins:    []string{"http://localhost:5173"},
		RequestTimeout: time.Second,
	}, logger.Nop())

	req := newPreflight("http://localhost:5173")
	rec := serveRecorder(h.Init(), req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}
