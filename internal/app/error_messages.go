// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-notes-keeper server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of the response envelope. The client shows them to the
// user unchanged.
package app

// Validation messages (400).
const (
	MsgInvalidJSON      = "Invalid JSON was passed"
	MsgFullNameRequired = "Full Name is required"
	MsgEmailRequired    = "Email is required"
	MsgPasswordRequired = "Password is required"

	// MsgPasswordTooLong is returned when the password exceeds what bcrypt
	// can hash (72 bytes).
	MsgPasswordTooLong = "Password must be at most 72 bytes"

	MsgTitleRequired       = "Title is required"
	MsgContentRequired     = "Content is required"
	MsgNoChangesProvided   = "No changes provided."
	MsgSearchQueryRequired = "Search query is required"

	MsgInvalidDataProvided = "Invalid data provided"
)

// Authentication messages.
const (
	// MsgInvalidCredentials is returned by login for an unknown email and a
	// wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserAlreadyExists is returned with status 200 and "error": true
	// when the email is already registered.
	MsgUserAlreadyExists = "User already exist!"

	MsgEmptyAuthorizationHeader = "Authorization header is required"
	MsgInvalidAuthorization     = "Invalid authorization header"
	MsgTokenIsExpiredOrInvalid  = "Token is expired or invalid"
	MsgUnauthorized             = "Unauthorized"
)

// Note messages.
const (
	// MsgNoteNotFound covers both a missing note and a note that belongs to
	// someone else.
	MsgNoteNotFound = "Note not found."

	MsgUserNotFound = "User not found"
)

// Success messages.
const (
	MsgRegistrationSuccessful = "Registration successful"
	MsgLoginSuccessful        = "Login successful"
	MsgNoteAdded              = "Note added successfully"
	MsgNoteUpdated            = "Note updated successfully."
	MsgNoteDeleted            = "Note deleted successfully."
	MsgNotePinUpdated         = "Note pin state updated successfully."
	MsgNoteSeenUpdated        = "Note seen state updated successfully."
	MsgNotesRetrieved         = "All notes retrieved successfully."
	MsgSearchRetrieved        = "Notes matching the search query retrieved successfully."
)

// MsgInternalServerError is returned for any unexpected server-side failure.
const MsgInternalServerError = "Internal Server Error"

// MsgHello is the payload of the root health route.
const MsgHello = "Hello"

// MsgNotFound answers unknown routes and unsupported methods.
const MsgNotFound = "Not Found"
