// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the Bubble Tea application for the herdwatch TUI.
//
// This file contains all rendering logic: the per-mode screens, the shared
// header and status bar, and the transcript refresh for the chat viewport.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/herdwatch-tui/internal/model"
	"github.com/jeranaias/herdwatch-tui/internal/render"
	"github.com/jeranaias/herdwatch-tui/internal/session"
	"github.com/jeranaias/herdwatch-tui/internal/util"
)

// chatChromeHeight is the fixed vertical space around the chat viewport:
// header (3) + input area (3) + status bar (1) + notice line (1).
const chatChromeHeight = 8

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the screen for the current session mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var body string
	switch m.sess.Mode() {
	case session.ModeWelcome:
		body = m.renderWelcome()
	case session.ModeDashboard:
		body = m.renderDashboard()
	case session.ModeHealthCheck:
		body = m.renderHealthCheck()
	case session.ModeChatbot:
		body = m.renderChatbot()
	case session.ModeResults:
		body = m.renderResults()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderNotice(),
		m.renderStatusBar(),
	)
}

// renderHeader renders the application banner.
func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("herdwatch")
	subtitle := m.theme.HeaderSubtitle.Render("cattle health monitor")
	line := title + "  " + subtitle

	if id := m.sess.Identity(); id.IsSet() {
		who := util.TruncateWidth(id.Name+" @ "+id.Location, m.width/3)
		line += "  " + m.theme.HeaderBrand.Render(who)
	}

	return m.theme.Header.Width(m.width - 2).Render(line)
}

// renderNotice renders the transient notice line, or a blank placeholder so
// the layout height stays stable.
func (m Model) renderNotice() string {
	if m.notice == "" {
		return " "
	}
	return m.theme.FormNotice.Render(util.TruncateWidth(m.notice, m.width))
}

// renderStatusBar renders shortcuts and the busy indicator.
func (m Model) renderStatusBar() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts,
			m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	bar := strings.Join(parts, "  ")

	if m.sess.Busy() {
		bar += "  " + m.spin.View() + m.theme.ThinkingText.Render(" working...")
	}

	return m.theme.StatusBar.Width(m.width).Render(bar)
}

// =============================================================================
// WELCOME
// =============================================================================

func (m Model) renderWelcome() string {
	var b strings.Builder

	b.WriteString(m.theme.WelcomeLogo.Render("Welcome to the Cattle Health Monitor"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.WelcomeInfo.Render("Enter your details to begin."))
	b.WriteString("\n\n")

	labels := [welcomeFieldCount]string{
		welcomeFieldName:     "Farmer Name",
		welcomeFieldLocation: "Farm Location",
	}
	for i, input := range m.welcomeInputs {
		b.WriteString(m.renderFormField(labels[i], input.View(), i == m.welcomeFocus))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.WelcomePressKey.Render("Press Enter to start"))

	return m.theme.WelcomeBox.Render(b.String())
}

// renderFormField renders one labelled input row.
func (m Model) renderFormField(label, input string, focused bool) string {
	style := m.theme.FormLabel
	if focused {
		style = m.theme.FormLabelFocused
	}
	return style.Render(label) + "\n" + input
}

// =============================================================================
// DASHBOARD
// =============================================================================

func (m Model) renderDashboard() string {
	greeting := m.theme.GreetingBanner.Render(m.sess.Greeting())

	healthCard := m.renderActionCard(
		"Health Check",
		"Enter a reading and get an assessment",
		m.dashFocus == 0,
	)
	chatCard := m.renderActionCard(
		"Cattle Chatbot",
		"Ask about diseases, feeding, and care",
		m.dashFocus == 1,
	)
	cards := lipgloss.JoinHorizontal(lipgloss.Top, healthCard, "  ", chatCard)

	return lipgloss.JoinVertical(lipgloss.Left, greeting, "", cards)
}

func (m Model) renderActionCard(title, desc string, focused bool) string {
	style := m.theme.ActionCard
	if focused {
		style = m.theme.ActionCardHot
	}
	content := m.theme.ActionTitle.Render(title) + "\n" + m.theme.ActionDesc.Render(desc)
	return style.Render(content)
}

// =============================================================================
// HEALTH CHECK FORM
// =============================================================================

func (m Model) renderHealthCheck() string {
	var b strings.Builder

	b.WriteString(m.theme.ActionTitle.Render("Cattle Health Check"))
	b.WriteString("\n\n")

	for i, input := range m.healthInputs {
		b.WriteString(m.renderFormField(healthFields[i].label, input.View(), i == m.healthFocus))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.sess.HealthCheckBusy() {
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.ThinkingText.Render(" Analyzing health status..."))
	} else {
		b.WriteString(m.theme.FormHint.Render("Press Enter to analyze"))
	}

	return m.theme.Container.Render(b.String())
}

// =============================================================================
// RESULTS PANEL
// =============================================================================

func (m Model) renderResults() string {
	assessment := m.sess.Assessment()
	if assessment == nil {
		return m.theme.Container.Render("")
	}

	formatted := render.FormatAssessment(*assessment)
	panel := m.theme.ResultStyle(formatted.Class.String())

	var b strings.Builder
	b.WriteString(panel.Render(formatted.Label))
	b.WriteString("\n\n")
	b.WriteString(m.theme.ResultConfidence.Render(formatted.Confidence))
	if formatted.Recommendation != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.ResultAdvice.Render(formatted.Recommendation))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.FormHint.Render("Enter: new reading  Esc: dashboard"))

	return m.theme.Container.Render(b.String())
}

// =============================================================================
// CHATBOT
// =============================================================================

func (m Model) renderChatbot() string {
	input := m.theme.InputContainer.Width(m.width - 2).Render(m.chatInput.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.chatViewport.View(), input)
}

// refreshTranscript re-renders the transcript into the chat viewport and
// scrolls to the latest turn.
func (m *Model) refreshTranscript() {
	msgs := m.sess.Transcript().Messages()
	if len(msgs) == 0 {
		m.chatViewport.SetContent("")
		return
	}

	bubbleWidth := m.chatViewport.Width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderBubble(msg, bubbleWidth))
		b.WriteString("\n")
	}

	m.chatViewport.SetContent(b.String())
	m.chatViewport.GotoBottom()
}

func (m Model) renderBubble(msg model.Message, width int) string {
	label := fmt.Sprintf("%s:", msg.Role.DisplayName())
	content := label + "\n" + msg.Content

	if msg.Role == model.RoleUser {
		return m.theme.UserBubble.MaxWidth(width).Render(content)
	}
	return m.theme.AssistantBubble.MaxWidth(width).Render(content)
}
