// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant to be installed with [chi.Mux.MethodNotAllowed].
// Requests whose method has no handler for the matched path get a 404
// envelope instead of chi's default 405, so unsupported methods do not
// reveal which routes exist. Route patterns with URL parameters are matched
// the same way the router matches them.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	}
}

// notFound answers unknown paths with the JSON envelope.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
