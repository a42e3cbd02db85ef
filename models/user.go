// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns notes.
type User struct {
	// ID is the server-assigned identifier (UUIDv7). Immutable.
	ID string `json:"id"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Email is the unique login identifier, compared exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedOn is the timestamp when the account was created.
	CreatedOn time.Time `json:"createdOn"`
}

// RegisterRequest is the payload of the create-account endpoint.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
