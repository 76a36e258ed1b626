// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package ui provides the Bubble Tea application for the herdwatch TUI.

The package is a thin adapter over the session state machine in
internal/session: every screen corresponds to one session mode, every
user action maps to one session operation, and every network completion
is delivered back as a Bubble Tea message carrying its dispatch token.

# Structure

  - model.go    - root Model, widget construction, form helpers
  - update.go   - per-mode key handling and completion routing
  - view.go     - per-mode rendering, header, status bar, transcript
  - messages.go - Bubble Tea message types for request completions
  - commands.go - tea.Cmd creators wrapping the API client
  - keys.go     - key bindings

# Screens

	Welcome      two-field identity form
	Dashboard    greeting banner plus the two action cards
	HealthCheck  seven-field reading form with busy indicator
	Results      assessment panel colored by status class
	Chatbot      transcript viewport plus message input

The Model never mutates conversation or assessment state itself; it asks
the session and re-renders whatever the session holds afterwards. Stale
completions (after logout or a newer dispatch) are dropped by the session
and leave the screen untouched.
*/
package ui
