// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the Bubble Tea application for the herdwatch TUI.
package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/herdwatch-tui/internal/session"
	"github.com/jeranaias/herdwatch-tui/internal/validate"
)

// =============================================================================
// UPDATE DISPATCH
// =============================================================================

// Update routes messages to the handler for the current session mode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case GreetingResultMsg:
		// Greeting failure is absorbed; the fallback greeting stays.
		m.sess.CompleteGreeting(msg.Token, msg.Greeting, msg.Err)
		return m, nil

	case HealthResultMsg:
		notice, ok := m.sess.CompleteHealthCheck(msg.Token, msg.Assessment, msg.Err)
		if !ok {
			return m, nil
		}
		if notice != "" {
			m.notice = notice
			return m, clearNoticeCmd()
		}
		return m, nil

	case ChatResultMsg:
		if m.sess.CompleteChat(msg.Token, msg.Reply, msg.Err) {
			m.refreshTranscript()
		}
		return m, nil

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey applies global bindings, then mode-specific ones.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.sess.Mode() {
	case session.ModeWelcome:
		return m.updateWelcome(msg)
	case session.ModeDashboard:
		return m.updateDashboard(msg)
	case session.ModeHealthCheck:
		return m.updateHealthCheck(msg)
	case session.ModeChatbot:
		return m.updateChatbot(msg)
	case session.ModeResults:
		return m.updateResults(msg)
	}
	return m, nil
}

// =============================================================================
// WELCOME
// =============================================================================

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		m.focusWelcomeField(m.welcomeFocus + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.focusWelcomeField(m.welcomeFocus - 1)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		name := m.welcomeInputs[welcomeFieldName].Value()
		location := m.welcomeInputs[welcomeFieldLocation].Value()

		token, err := m.sess.Start(name, location)
		if err != nil {
			var verr *validate.Error
			if errors.As(err, &verr) {
				m.notice = verr.Notice
				return m, clearNoticeCmd()
			}
			return m, nil
		}

		m.notice = ""
		return m, fetchGreetingCmd(m.client, token, m.sess.Identity())
	}

	var cmd tea.Cmd
	m.welcomeInputs[m.welcomeFocus], cmd = m.welcomeInputs[m.welcomeFocus].Update(msg)
	return m, cmd
}

// =============================================================================
// DASHBOARD
// =============================================================================

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.HealthCheck):
		return m.openHealthCheck()

	case key.Matches(msg, m.keys.Chatbot):
		return m.openChatbot()

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		m.dashFocus = 1 - m.dashFocus
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.dashFocus == 0 {
			return m.openHealthCheck()
		}
		return m.openChatbot()
	}

	switch msg.String() {
	case "left", "right":
		m.dashFocus = 1 - m.dashFocus
	}
	return m, nil
}

// =============================================================================
// HEALTH CHECK FORM
// =============================================================================

func (m Model) updateHealthCheck(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.Back):
		if err := m.sess.CloseSubPanel(); err == nil {
			m.notice = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Chatbot):
		return m.openChatbot()

	case key.Matches(msg, m.keys.NextField):
		m.focusHealthField(m.healthFocus + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.focusHealthField(m.healthFocus - 1)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitHealthCheck()
	}

	var cmd tea.Cmd
	m.healthInputs[m.healthFocus], cmd = m.healthInputs[m.healthFocus].Update(msg)
	return m, cmd
}

// submitHealthCheck validates the form and dispatches one assessment request.
func (m Model) submitHealthCheck() (tea.Model, tea.Cmd) {
	reading, err := validate.Reading(m.rawReading())
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			m.notice = verr.Notice
			return m, clearNoticeCmd()
		}
		return m, nil
	}

	token, err := m.sess.BeginHealthCheck()
	if err != nil {
		// A prior attempt is still outstanding; the spinner already shows it.
		return m, nil
	}

	m.notice = ""
	return m, submitHealthCmd(m.client, token, reading)
}

// =============================================================================
// RESULTS PANEL
// =============================================================================

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.Back):
		m.sess.CloseSubPanel()
		return m, nil

	case key.Matches(msg, m.keys.HealthCheck), key.Matches(msg, m.keys.Submit):
		// Back to the form for another reading.
		return m.openHealthCheck()

	case key.Matches(msg, m.keys.Chatbot):
		return m.openChatbot()
	}
	return m, nil
}

// =============================================================================
// CHATBOT
// =============================================================================

func (m Model) updateChatbot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.Back):
		if err := m.sess.CloseSubPanel(); err == nil {
			m.chatInput.Blur()
			m.notice = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.HealthCheck):
		return m.openHealthCheck()

	case key.Matches(msg, m.keys.PageUp):
		m.chatViewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.chatViewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitChat()
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// submitChat runs one chat submission through the session dispatch rule.
func (m Model) submitChat() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.chatInput.Value())

	token, dispatch, err := m.sess.SubmitChat(text)
	if err != nil {
		// Single-flight refusal or a mode race; the input keeps its text.
		return m, nil
	}
	if text != "" {
		m.chatInput.Reset()
		m.refreshTranscript()
	}
	if !dispatch {
		return m, nil
	}
	return m, submitChatCmd(m.client, token, text, m.sess.Identity())
}

// =============================================================================
// SHARED TRANSITIONS
// =============================================================================

func (m Model) openHealthCheck() (tea.Model, tea.Cmd) {
	if err := m.sess.OpenHealthCheck(); err != nil {
		return m, nil
	}
	m.chatInput.Blur()
	m.notice = ""
	m.focusHealthField(healthFieldTemperature)
	return m, nil
}

func (m Model) openChatbot() (tea.Model, tea.Cmd) {
	if err := m.sess.OpenChatbot(); err != nil {
		return m, nil
	}
	m.notice = ""
	m.chatInput.Focus()
	m.refreshTranscript()
	return m, nil
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.sess.Logout()
	m.resetForms()
	return m, nil
}
