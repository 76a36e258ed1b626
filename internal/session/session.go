// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the client-side session and interaction state machine.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jeranaias/herdwatch-tui/internal/api"
	"github.com/jeranaias/herdwatch-tui/internal/model"
	"github.com/jeranaias/herdwatch-tui/internal/topic"
	"github.com/jeranaias/herdwatch-tui/internal/validate"
)

// =============================================================================
// MODES
// =============================================================================

// Mode is the active UI mode. Exactly one mode is active at a time.
type Mode int

const (
	// ModeWelcome shows the name/location form; no identity is set.
	ModeWelcome Mode = iota
	// ModeDashboard shows the greeting and the two action cards.
	ModeDashboard
	// ModeHealthCheck shows the vital-sign reading form.
	ModeHealthCheck
	// ModeChatbot shows the chat transcript and input.
	ModeChatbot
	// ModeResults shows the reading form with the assessment panel below it.
	// Entered only from ModeHealthCheck after a successful response.
	ModeResults
)

// String returns the mode name for status display.
func (m Mode) String() string {
	switch m {
	case ModeWelcome:
		return "welcome"
	case ModeDashboard:
		return "dashboard"
	case ModeHealthCheck:
		return "health-check"
	case ModeChatbot:
		return "chatbot"
	case ModeResults:
		return "results"
	default:
		return "unknown"
	}
}

// =============================================================================
// ERRORS AND SCRIPTED STRINGS
// =============================================================================

var (
	// ErrInvalidTransition is returned when an action is not legal in the
	// current mode.
	ErrInvalidTransition = errors.New("action not available in current mode")

	// ErrRequestInFlight is returned when a request of the same action class
	// is already outstanding. Attempts are refused, never queued.
	ErrRequestInFlight = errors.New("a request is already in progress")
)

// Scripted failure strings. The wording matches the backend's own frontend
// and is part of the client contract.
const (
	ChatTransportFailure   = "Failed to connect to cattle health server. Please ensure the backend is running."
	ChatApplicationFailure = "Sorry, I encountered an error analyzing your cattle question. Please try again."

	HealthTransportFailure      = "Failed to connect to server. Please ensure the backend is running."
	HealthApplicationFailurePfx = "Error analyzing health status: "
)

// OnboardingMessage is the fixed assistant turn seeded into the transcript
// when the chatbot is first opened.
const OnboardingMessage = "Hello! I can help with cattle health and management. Try asking about:\n" +
	"• Cattle diseases and symptoms\n" +
	"• Milk production and dairy cattle\n" +
	"• Breeding and calf care\n" +
	"• Cattle nutrition and feeding\n" +
	"• Shelter and pasture management\n" +
	"• Cattle behavior and health monitoring"

// =============================================================================
// SESSION
// =============================================================================

// inflight is the single-flight latch for one action class. The token is
// rotated on every dispatch and cleared on logout, so a completion delivered
// with a stale token is detected and dropped rather than ignored by accident.
type inflight struct {
	token string
	busy  bool
}

// begin marks a new dispatch and returns its token.
func (f *inflight) begin() string {
	f.token = uuid.NewString()
	f.busy = true
	return f.token
}

// settle clears the latch if the token is current. Returns false for stale
// completions.
func (f *inflight) settle(token string) bool {
	if !f.busy || f.token != token {
		return false
	}
	f.busy = false
	f.token = ""
	return true
}

// reset discards any outstanding dispatch.
func (f *inflight) reset() {
	f.token = ""
	f.busy = false
}

// Session is the explicit session object: identity, mode, transcript, and the
// per-action-class single-flight latches. All mode transitions go through its
// methods; there is no other mutable session state in the client.
//
// Completions arrive from request goroutines, so access is guarded by a
// mutex even though the TUI serializes calls through its event loop.
type Session struct {
	mu sync.Mutex

	identity model.Identity
	mode     Mode

	greeting   string
	transcript *model.Transcript
	assessment *model.HealthAssessment

	onboarded bool // onboarding message already seeded this session

	greetingFlight inflight
	healthFlight   inflight
	chatFlight     inflight
}

// New creates a session in ModeWelcome with no identity.
func New() *Session {
	return &Session{
		mode:       ModeWelcome,
		transcript: model.NewTranscript(),
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Mode returns the active UI mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Identity returns the operator identity. Zero value before Start.
func (s *Session) Identity() model.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Greeting returns the dashboard greeting text.
func (s *Session) Greeting() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.greeting
}

// Transcript returns the chat transcript.
func (s *Session) Transcript() *model.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript
}

// Assessment returns the displayed assessment, or nil when the results panel
// is hidden.
func (s *Session) Assessment() *model.HealthAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assessment
}

// HealthCheckBusy reports whether a health-check request is outstanding.
func (s *Session) HealthCheckBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.healthFlight.busy
}

// ChatBusy reports whether a chat request is outstanding.
func (s *Session) ChatBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatFlight.busy
}

// GreetingBusy reports whether the greeting request is outstanding.
func (s *Session) GreetingBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.greetingFlight.busy
}

// Busy reports whether any request is outstanding.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.greetingFlight.busy || s.healthFlight.busy || s.chatFlight.busy
}

// =============================================================================
// SESSION START / LOGOUT
// =============================================================================

// Start validates and sets the identity, seeds the fallback greeting, and
// transitions Welcome -> Dashboard. The returned token identifies the
// best-effort greeting request the caller should dispatch; the transition
// happens regardless of that request's outcome.
func (s *Session) Start(name, location string) (greetingToken string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeWelcome {
		return "", ErrInvalidTransition
	}

	id, err := validate.Identity(name, location)
	if err != nil {
		return "", err
	}

	s.identity = id
	s.mode = ModeDashboard
	s.greeting = api.FallbackGreeting(id.Name)
	return s.greetingFlight.begin(), nil
}

// CompleteGreeting installs the personalized greeting. A failed call keeps
// the fallback: greeting failure is absorbed, never shown to the user.
// Stale tokens are dropped.
func (s *Session) CompleteGreeting(token, greeting string, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.greetingFlight.settle(token) {
		return false
	}
	if err == nil && greeting != "" {
		s.greeting = greeting
	}
	return true
}

// Logout clears identity, transcript, and assessment, discards in-flight
// request tokens, and returns to Welcome. In-flight requests are not
// cancelled; their completions arrive with stale tokens and are dropped.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = model.Identity{}
	s.greeting = ""
	s.transcript.Clear()
	s.assessment = nil
	s.onboarded = false
	s.mode = ModeWelcome

	s.greetingFlight.reset()
	s.healthFlight.reset()
	s.chatFlight.reset()
}

// =============================================================================
// PANEL TRANSITIONS
// =============================================================================

// OpenHealthCheck shows the reading form. Legal from the dashboard, from the
// results panel, and directly from the chatbot (the sibling panel closes).
func (s *Session) OpenHealthCheck() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.mode {
	case ModeDashboard, ModeChatbot, ModeResults, ModeHealthCheck:
		s.assessment = nil
		s.mode = ModeHealthCheck
		return nil
	default:
		return ErrInvalidTransition
	}
}

// OpenChatbot shows the chat panel. Legal from the dashboard, from the
// reading form, and from the results panel (the sibling panel closes).
// The first open of a session seeds the onboarding message; re-opening does
// not duplicate it unless logout cleared the transcript.
//
// Leaving the reading form abandons any outstanding health-check dispatch:
// its token is discarded so the completion arrives stale and the results
// panel can never open over the chatbot.
func (s *Session) OpenChatbot() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.mode {
	case ModeDashboard, ModeHealthCheck, ModeResults, ModeChatbot:
		s.assessment = nil
		s.healthFlight.reset()
		s.mode = ModeChatbot
		if !s.onboarded {
			s.transcript.AppendAssistant(OnboardingMessage)
			s.onboarded = true
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}

// CloseSubPanel returns from either sub-state to the dashboard. Any
// outstanding health-check dispatch is abandoned along with the form.
func (s *Session) CloseSubPanel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.mode {
	case ModeHealthCheck, ModeChatbot, ModeResults:
		s.assessment = nil
		s.healthFlight.reset()
		s.mode = ModeDashboard
		return nil
	default:
		return ErrInvalidTransition
	}
}

// =============================================================================
// HEALTH CHECK LIFECYCLE
// =============================================================================

// BeginHealthCheck admits one health-check dispatch. A new attempt hides any
// previous results panel. Refused while a prior attempt is outstanding.
func (s *Session) BeginHealthCheck() (token string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeHealthCheck && s.mode != ModeResults {
		return "", ErrInvalidTransition
	}
	if s.healthFlight.busy {
		return "", ErrRequestInFlight
	}

	s.assessment = nil
	s.mode = ModeHealthCheck
	return s.healthFlight.begin(), nil
}

// CompleteHealthCheck applies the outcome of a health-check request. On
// success the results panel is shown; on failure the form stays open for a
// fresh user-initiated retry and the returned notice is shown. Stale tokens
// mutate nothing.
func (s *Session) CompleteHealthCheck(token string, assessment model.HealthAssessment, reqErr error) (notice string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.healthFlight.settle(token) {
		return "", false
	}

	if reqErr != nil {
		if api.IsApplication(reqErr) {
			return HealthApplicationFailurePfx + reqErr.Error(), true
		}
		return HealthTransportFailure, true
	}

	s.assessment = &assessment
	s.mode = ModeResults
	return "", true
}

// =============================================================================
// CHAT LIFECYCLE
// =============================================================================

// SubmitChat runs the chat dispatch rule for one submission attempt:
//
//   - blank messages are ignored entirely;
//   - while a prior send is outstanding the attempt is refused (single-flight);
//   - otherwise the user turn is appended to the transcript immediately;
//   - the topic gate then decides: out-of-domain messages get the fixed
//     refusal as an assistant turn and no request, in-domain messages get a
//     dispatch token.
//
// dispatch is true iff the caller should issue the network request.
func (s *Session) SubmitChat(text string) (token string, dispatch bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeChatbot {
		return "", false, ErrInvalidTransition
	}
	if text == "" {
		return "", false, nil
	}
	if s.chatFlight.busy {
		return "", false, ErrRequestInFlight
	}

	s.transcript.AppendUser(text)

	if !topic.IsInDomain(text) {
		s.transcript.AppendAssistant(topic.RefusalMessage)
		return "", false, nil
	}

	return s.chatFlight.begin(), true, nil
}

// CompleteChat appends the assistant turn for a dispatched chat request:
// the reply on success, a scripted failure entry otherwise. The user's own
// turn is already in the transcript. Stale tokens mutate nothing.
func (s *Session) CompleteChat(token, reply string, reqErr error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.chatFlight.settle(token) {
		return false
	}

	switch {
	case reqErr == nil:
		s.transcript.AppendAssistant(reply)
	case api.IsApplication(reqErr):
		s.transcript.AppendAssistant(ChatApplicationFailure)
	default:
		s.transcript.AppendAssistant(ChatTransportFailure)
	}
	return true
}
