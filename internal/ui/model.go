// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the Bubble Tea application for the herdwatch TUI.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/herdwatch-tui/internal/api"
	"github.com/jeranaias/herdwatch-tui/internal/session"
	"github.com/jeranaias/herdwatch-tui/internal/ui/styles"
	"github.com/jeranaias/herdwatch-tui/internal/validate"
)

// =============================================================================
// FORM FIELD INDICES
// =============================================================================

// Welcome form fields.
const (
	welcomeFieldName = iota
	welcomeFieldLocation
	welcomeFieldCount
)

// Health-check form fields, in display order.
const (
	healthFieldTemperature = iota
	healthFieldMilk
	healthFieldRespiratory
	healthFieldHeartRate
	healthFieldWalking
	healthFieldBreed
	healthFieldFaecal
	healthFieldCount
)

// healthFieldSpec pairs each reading field with its label and hint.
type healthFieldSpec struct {
	label       string
	placeholder string
}

// Units follow the herd monitor backend's training features.
var healthFields = [healthFieldCount]healthFieldSpec{
	healthFieldTemperature: {"Body Temperature", "e.g. 38.5 (°C)"},
	healthFieldMilk:        {"Milk Production", "e.g. 22.0 (liters/day)"},
	healthFieldRespiratory: {"Respiratory Rate", "e.g. 30 (breaths/min)"},
	healthFieldHeartRate:   {"Heart Rate", "e.g. 65 (bpm)"},
	healthFieldWalking:     {"Walking Capacity", "e.g. 12000 (steps/day)"},
	healthFieldBreed:       {"Breed Type", "0 or 1"},
	healthFieldFaecal:      {"Faecal Consistency", "0 to 4"},
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// Model is the root Bubble Tea model. All state transitions live in the
// session state machine; the model only holds the widgets and dispatches
// network commands when the session admits them.
type Model struct {
	theme  *styles.Theme
	keys   KeyMap
	sess   *session.Session
	client *api.Client

	// Dimensions
	width  int
	height int

	// Welcome form
	welcomeInputs [welcomeFieldCount]textinput.Model
	welcomeFocus  int

	// Dashboard action cards: 0 = health check, 1 = chatbot
	dashFocus int

	// Health-check form
	healthInputs [healthFieldCount]textinput.Model
	healthFocus  int

	// Chatbot
	chatViewport viewport.Model
	chatInput    textinput.Model

	// Busy indicator
	spin spinner.Model

	// Transient notice line (validation or request failure)
	notice string

	quitting bool
}

// New creates the root model.
func New(theme *styles.Theme, client *api.Client) Model {
	m := Model{
		theme:  theme,
		keys:   DefaultKeyMap(),
		sess:   session.New(),
		client: client,
	}

	m.welcomeInputs[welcomeFieldName] = newFormInput("e.g. John Smith")
	m.welcomeInputs[welcomeFieldLocation] = newFormInput("e.g. Green Valley Farm")
	m.welcomeInputs[welcomeFieldName].Focus()

	for i, spec := range healthFields {
		m.healthInputs[i] = newFormInput(spec.placeholder)
	}

	ci := textinput.New()
	ci.Prompt = "> "
	ci.Placeholder = "Ask about your cattle..."
	ci.CharLimit = 2048
	m.chatInput = ci

	vp := viewport.New(80, 20)
	vp.SetContent("")
	m.chatViewport = vp

	// ASCII-compatible spinner frames
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner
	m.spin = sp

	return m
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Session exposes the state machine, primarily for tests.
func (m Model) Session() *session.Session {
	return m.sess
}

// newFormInput builds a single-line form input with a placeholder hint.
func newFormInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	return ti
}

// =============================================================================
// FORM HELPERS
// =============================================================================

// focusWelcomeField moves focus within the welcome form.
func (m *Model) focusWelcomeField(idx int) {
	idx = (idx + welcomeFieldCount) % welcomeFieldCount
	m.welcomeFocus = idx
	for i := range m.welcomeInputs {
		if i == idx {
			m.welcomeInputs[i].Focus()
		} else {
			m.welcomeInputs[i].Blur()
		}
	}
}

// focusHealthField moves focus within the health-check form.
func (m *Model) focusHealthField(idx int) {
	idx = (idx + healthFieldCount) % healthFieldCount
	m.healthFocus = idx
	for i := range m.healthInputs {
		if i == idx {
			m.healthInputs[i].Focus()
		} else {
			m.healthInputs[i].Blur()
		}
	}
}

// rawReading collects the health form fields as typed.
func (m Model) rawReading() validate.RawReading {
	return validate.RawReading{
		Temperature: m.healthInputs[healthFieldTemperature].Value(),
		Milk:        m.healthInputs[healthFieldMilk].Value(),
		Respiratory: m.healthInputs[healthFieldRespiratory].Value(),
		HeartRate:   m.healthInputs[healthFieldHeartRate].Value(),
		Walking:     m.healthInputs[healthFieldWalking].Value(),
		Breed:       m.healthInputs[healthFieldBreed].Value(),
		Faecal:      m.healthInputs[healthFieldFaecal].Value(),
	}
}

// resetForms clears every input after logout.
func (m *Model) resetForms() {
	for i := range m.welcomeInputs {
		m.welcomeInputs[i].Reset()
	}
	for i := range m.healthInputs {
		m.healthInputs[i].Reset()
	}
	m.chatInput.Reset()
	m.chatInput.Blur()
	m.chatViewport.SetContent("")
	m.dashFocus = 0
	m.notice = ""
	m.focusWelcomeField(welcomeFieldName)
}

// handleResize recomputes widget dimensions.
func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height

	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	for i := range m.welcomeInputs {
		m.welcomeInputs[i].Width = inputWidth
	}
	for i := range m.healthInputs {
		m.healthInputs[i].Width = inputWidth
	}
	m.chatInput.Width = inputWidth

	// Header, input area, and status bar are fixed-height chrome.
	vpHeight := height - chatChromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.chatViewport.Width = width
	m.chatViewport.Height = vpHeight
	m.refreshTranscript()
}
