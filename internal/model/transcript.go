// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the ordered chat history for one session. It is append-only:
// insertion order is display order, and entries are never edited or removed
// individually. Clear is the only destructive operation and is reserved for
// logout.
type Transcript struct {
	messages []Message
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a message to the end of the transcript and returns it.
func (t *Transcript) Append(msg Message) Message {
	t.messages = append(t.messages, msg)
	return msg
}

// AppendUser appends a user turn.
func (t *Transcript) AppendUser(content string) Message {
	return t.Append(NewUserMessage(content))
}

// AppendAssistant appends an assistant turn.
func (t *Transcript) AppendAssistant(content string) Message {
	return t.Append(NewAssistantMessage(content))
}

// Messages returns the transcript in insertion order. The returned slice is
// shared; callers must not mutate it.
func (t *Transcript) Messages() []Message {
	return t.messages
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty reports whether the transcript has no turns.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// Clear removes all turns. Only logout should call this.
func (t *Transcript) Clear() {
	t.messages = nil
}
