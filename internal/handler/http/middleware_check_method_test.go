package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodTestRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Get("/get-all-notes", ok)
	router.Put("/edit-note/{noteId}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered static route", http.MethodGet, "/get-all-notes", http.StatusOK},
		{"wrong method on static route", http.MethodPost, "/get-all-notes", http.StatusNotFound},
		{"registered param route", http.MethodPut, "/edit-note/abc", http.StatusOK},
		{"wrong method on param route", http.MethodGet, "/edit-note/abc", http.StatusNotFound},
	}

	router := newMethodTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_EnvelopeBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newMethodTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/get-all-notes", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"Not Found"}`, rec.Body.String())
}
