// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the Bubble Tea application for the herdwatch TUI.
package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/herdwatch-tui/internal/api"
	"github.com/jeranaias/herdwatch-tui/internal/session"
	"github.com/jeranaias/herdwatch-tui/internal/topic"
	"github.com/jeranaias/herdwatch-tui/internal/ui/styles"
	"github.com/jeranaias/herdwatch-tui/internal/validate"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// newBackendStub serves all three endpoints with canned successful replies.
func newBackendStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/greeting", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"greeting": "Welcome back, Ana from Green Valley!",
		})
	})
	mux.HandleFunc("/api/health-check", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":         true,
			"health_status":   "healthy",
			"confidence":      0.92,
			"recommendations": "Keep up the good work.",
		})
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"response": "Mastitis is an udder infection. Call your vet.",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestModel(t *testing.T, baseURL string) Model {
	t.Helper()
	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: baseURL})
	m := New(styles.NewTheme(), client)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func enter() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyEnter} }
func escape() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

// signIn drives the model from the welcome form onto the dashboard and
// settles the greeting request.
func signIn(t *testing.T, m Model) Model {
	t.Helper()
	m.welcomeInputs[welcomeFieldName].SetValue("Ana")
	m.welcomeInputs[welcomeFieldLocation].SetValue("Green Valley")

	m, cmd := pressKey(t, m, enter())
	if m.sess.Mode() != session.ModeDashboard {
		t.Fatalf("after sign-in mode = %v, want Dashboard", m.sess.Mode())
	}
	if cmd == nil {
		t.Fatal("sign-in should dispatch a greeting request")
	}

	updated, _ := m.Update(cmd())
	return updated.(Model)
}

// fillHealthForm sets a full valid reading.
func fillHealthForm(m *Model) {
	values := [healthFieldCount]string{
		healthFieldTemperature: "38.5",
		healthFieldMilk:        "22.0",
		healthFieldRespiratory: "30",
		healthFieldHeartRate:   "65",
		healthFieldWalking:     "12000",
		healthFieldBreed:       "1",
		healthFieldFaecal:      "2",
	}
	for i, v := range values {
		m.healthInputs[i].SetValue(v)
	}
}

// =============================================================================
// WELCOME FLOW
// =============================================================================

func TestWelcomeRequiresIdentity(t *testing.T) {
	m := newTestModel(t, "http://127.0.0.1:1")

	m, cmd := pressKey(t, m, enter())
	if m.sess.Mode() != session.ModeWelcome {
		t.Errorf("mode = %v, want Welcome", m.sess.Mode())
	}
	if m.notice != validate.NoticeIdentityRequired {
		t.Errorf("notice = %q, want %q", m.notice, validate.NoticeIdentityRequired)
	}
	if cmd == nil {
		t.Error("expected a notice-dismissal command")
	}
}

func TestSignInShowsPersonalizedGreeting(t *testing.T) {
	srv := newBackendStub(t)
	m := newTestModel(t, srv.URL)

	m = signIn(t, m)
	if got := m.sess.Greeting(); got != "Welcome back, Ana from Green Valley!" {
		t.Errorf("greeting = %q", got)
	}
}

func TestSignInKeepsFallbackWhenGreetingFails(t *testing.T) {
	// Nothing is listening on this port.
	m := newTestModel(t, "http://127.0.0.1:1")

	m = signIn(t, m)
	if got := m.sess.Greeting(); got != "Hello Ana!" {
		t.Errorf("greeting = %q, want fallback", got)
	}
}

// =============================================================================
// DASHBOARD NAVIGATION
// =============================================================================

func TestDashboardOpensPanels(t *testing.T) {
	srv := newBackendStub(t)

	tests := []struct {
		name string
		key  tea.KeyMsg
		want session.Mode
	}{
		{"health shortcut", tea.KeyMsg{Type: tea.KeyCtrlE}, session.ModeHealthCheck},
		{"chat shortcut", tea.KeyMsg{Type: tea.KeyCtrlT}, session.ModeChatbot},
		{"enter on first card", enter(), session.ModeHealthCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := signIn(t, newTestModel(t, srv.URL))
			m, _ = pressKey(t, m, tt.key)
			if m.sess.Mode() != tt.want {
				t.Errorf("mode = %v, want %v", m.sess.Mode(), tt.want)
			}
		})
	}
}

func TestDashboardCardFocusToggles(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.dashFocus != 1 {
		t.Fatalf("dashFocus = %d, want 1", m.dashFocus)
	}
	m, _ = pressKey(t, m, enter())
	if m.sess.Mode() != session.ModeChatbot {
		t.Errorf("mode = %v, want Chatbot", m.sess.Mode())
	}
}

func TestEscReturnsToDashboard(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m, _ = pressKey(t, m, escape())
	if m.sess.Mode() != session.ModeDashboard {
		t.Errorf("mode = %v, want Dashboard", m.sess.Mode())
	}
}

// =============================================================================
// HEALTH CHECK FLOW
// =============================================================================

func TestHealthCheckHappyPath(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	fillHealthForm(&m)

	m, cmd := pressKey(t, m, enter())
	if cmd == nil {
		t.Fatal("valid reading should dispatch a request")
	}
	if !m.sess.HealthCheckBusy() {
		t.Error("session should be busy while the request is outstanding")
	}

	updated, _ := m.Update(cmd())
	m = updated.(Model)

	if m.sess.Mode() != session.ModeResults {
		t.Fatalf("mode = %v, want Results", m.sess.Mode())
	}
	a := m.sess.Assessment()
	if a == nil || a.Status != "healthy" {
		t.Errorf("assessment = %+v", a)
	}
}

func TestHealthCheckRejectsBadNumbers(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	fillHealthForm(&m)
	m.healthInputs[healthFieldTemperature].SetValue("warm")

	m, _ = pressKey(t, m, enter())
	if m.notice != validate.NoticeInvalidNumbers {
		t.Errorf("notice = %q, want %q", m.notice, validate.NoticeInvalidNumbers)
	}
	if m.sess.HealthCheckBusy() {
		t.Error("invalid form must not dispatch")
	}
}

func TestHealthCheckTransportFailureKeepsForm(t *testing.T) {
	m := signIn(t, newTestModel(t, "http://127.0.0.1:1"))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	fillHealthForm(&m)

	m, cmd := pressKey(t, m, enter())
	if cmd == nil {
		t.Fatal("valid reading should dispatch a request")
	}

	updated, _ := m.Update(cmd())
	m = updated.(Model)

	if m.sess.Mode() != session.ModeHealthCheck {
		t.Errorf("mode = %v, want HealthCheck (form stays open)", m.sess.Mode())
	}
	if m.notice != session.HealthTransportFailure {
		t.Errorf("notice = %q, want transport failure text", m.notice)
	}
}

// =============================================================================
// CHAT FLOW
// =============================================================================

func TestChatHappyPath(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.sess.Transcript().Len() != 1 {
		t.Fatalf("opening the chatbot should seed the onboarding message, len = %d",
			m.sess.Transcript().Len())
	}

	m.chatInput.SetValue("My cow has mastitis, what should I do?")
	m, cmd := pressKey(t, m, enter())
	if cmd == nil {
		t.Fatal("in-domain message should dispatch")
	}
	if m.chatInput.Value() != "" {
		t.Error("input should clear on submit")
	}

	updated, _ := m.Update(cmd())
	m = updated.(Model)

	msgs := m.sess.Transcript().Messages()
	last := msgs[len(msgs)-1]
	if !strings.Contains(last.Content, "udder infection") {
		t.Errorf("last turn = %q, want the advisor reply", last.Content)
	}
}

func TestChatRefusesOffTopicWithoutDispatch(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m.chatInput.SetValue("What is the weather tomorrow?")

	m, cmd := pressKey(t, m, enter())
	if cmd != nil {
		t.Error("out-of-domain message must not dispatch")
	}

	msgs := m.sess.Transcript().Messages()
	last := msgs[len(msgs)-1]
	if last.Content != topic.RefusalMessage {
		t.Errorf("last turn = %q, want the refusal", last.Content)
	}
}

func TestChatIgnoresBlankSubmit(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	before := m.sess.Transcript().Len()

	m.chatInput.SetValue("   ")
	m, cmd := pressKey(t, m, enter())
	if cmd != nil {
		t.Error("blank submit must not dispatch")
	}
	if m.sess.Transcript().Len() != before {
		t.Error("blank submit must not touch the transcript")
	}
}

// =============================================================================
// LOGOUT AND STALE COMPLETIONS
// =============================================================================

func TestLogoutClearsEverything(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.sess.Mode() != session.ModeWelcome {
		t.Errorf("mode = %v, want Welcome", m.sess.Mode())
	}
	if m.welcomeInputs[welcomeFieldName].Value() != "" {
		t.Error("welcome form should reset on logout")
	}
}

func TestHealthResultAfterPanelSwitchIsDropped(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	fillHealthForm(&m)
	m, cmd := pressKey(t, m, enter())
	if cmd == nil {
		t.Fatal("valid reading should dispatch a request")
	}
	result := cmd()

	// User switches to the chatbot before the response lands.
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	updated, _ := m.Update(result)
	m = updated.(Model)

	if m.sess.Mode() != session.ModeChatbot {
		t.Errorf("late result must not yank the user out of the chatbot, mode = %v", m.sess.Mode())
	}
	if m.sess.Assessment() != nil {
		t.Error("late result must not install an assessment")
	}
}

func TestStaleHealthResultAfterLogoutIsDropped(t *testing.T) {
	srv := newBackendStub(t)
	m := signIn(t, newTestModel(t, srv.URL))

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	fillHealthForm(&m)
	m, cmd := pressKey(t, m, enter())
	if cmd == nil {
		t.Fatal("valid reading should dispatch a request")
	}
	result := cmd()

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	updated, _ := m.Update(result)
	m = updated.(Model)

	if m.sess.Mode() != session.ModeWelcome {
		t.Errorf("stale completion must not move the session, mode = %v", m.sess.Mode())
	}
	if m.sess.Assessment() != nil {
		t.Error("stale completion must not install an assessment")
	}
}
