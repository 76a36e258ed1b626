// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the Bubble Tea application for the herdwatch TUI.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/herdwatch-tui/internal/api"
	"github.com/jeranaias/herdwatch-tui/internal/model"
)

// noticeDuration is how long a transient notice stays on screen.
const noticeDuration = 5 * time.Second

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// fetchGreetingCmd requests the personalized greeting. The result message
// carries the dispatch token so stale completions can be dropped.
func fetchGreetingCmd(client *api.Client, token string, id model.Identity) tea.Cmd {
	return func() tea.Msg {
		greeting, err := client.FetchGreeting(context.Background(), id)
		return GreetingResultMsg{Token: token, Greeting: greeting, Err: err}
	}
}

// submitHealthCmd submits a parsed reading for assessment.
func submitHealthCmd(client *api.Client, token string, reading model.HealthReading) tea.Cmd {
	return func() tea.Msg {
		assessment, err := client.SubmitHealthCheck(context.Background(), reading)
		return HealthResultMsg{Token: token, Assessment: assessment, Err: err}
	}
}

// submitChatCmd sends one chat message on behalf of the identified farmer.
func submitChatCmd(client *api.Client, token, text string, id model.Identity) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.SubmitChatMessage(context.Background(), text, id)
		return ChatResultMsg{Token: token, Reply: reply, Err: err}
	}
}

// clearNoticeCmd schedules dismissal of the notice line.
func clearNoticeCmd() tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}
