// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the Bubble Tea application for the herdwatch TUI.
//
// This file defines all Bubble Tea message types used by the application.
// Each network completion carries the dispatch token it was issued with;
// the session state machine drops completions whose token is stale, so a
// logout or a newer request silently retires in-flight responses.
package ui

import (
	"github.com/jeranaias/herdwatch-tui/internal/model"
)

// =============================================================================
// REQUEST COMPLETION MESSAGES
// =============================================================================

// GreetingResultMsg delivers the outcome of a personalized greeting request.
type GreetingResultMsg struct {
	Token    string
	Greeting string
	Err      error
}

// HealthResultMsg delivers the outcome of a health-check request.
type HealthResultMsg struct {
	Token      string
	Assessment model.HealthAssessment
	Err        error
}

// ChatResultMsg delivers the outcome of a chat request.
type ChatResultMsg struct {
	Token string
	Reply string
	Err   error
}

// =============================================================================
// UI STATE MESSAGES
// =============================================================================

// ClearNoticeMsg dismisses the transient notice line.
type ClearNoticeMsg struct{}
