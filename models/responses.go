// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope shared by every API response.
// Error is true whenever the operation did not succeed, including
// the register conflict that is answered with 200.
type Response struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// AuthResponse is returned by create-account and login.
type AuthResponse struct {
	Response
	AccessToken string `json:"accessToken,omitempty"`
	User        *User  `json:"user,omitempty"`
	Email       string `json:"email,omitempty"`
}

// UserResponse is returned by get-user.
type UserResponse struct {
	Response
	User *User `json:"user,omitempty"`
}

// NoteResponse is returned by endpoints that produce a single note.
type NoteResponse struct {
	Response
	Note *Note `json:"note,omitempty"`
}

// NotesResponse is returned by list and search.
type NotesResponse struct {
	Response
	Notes []Note `json:"notes"`
}

// HealthResponse is returned by the root route.
type HealthResponse struct {
	Data string `json:"data"`
}
