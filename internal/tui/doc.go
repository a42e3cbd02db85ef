// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the notes client, built on
// Bubble Tea.
//
// [RootModel] routes between the start menu, the login and sign-up forms
// and the notes page. The notes page reads the list from
// service.ClientNoteService on every update, so optimistic deletes and pin
// changes appear before the server answers. Service notifications reach
// the running program through [Notifier].
package tui
