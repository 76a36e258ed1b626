// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package topic implements the cattle-topic gate: the keyword-based admission
// filter that decides whether a chat message may be sent to the backend.
package topic

import "strings"

// =============================================================================
// VOCABULARY
// =============================================================================

// cattleKeywords is the closed vocabulary of in-domain terms: diseases,
// anatomy, husbandry, and the health-metric names used by the reading form.
var cattleKeywords = []string{
	"cattle", "cow", "cows", "bull", "bulls", "calf", "calves", "beef", "dairy",
	"milk", "breeding", "graze", "pasture", "feed", "fodder", "vaccine", "disease",
	"health", "temperature", "respiratory", "heart", "walking", "faecal", "manure",
	"udder", "hoof", "horn", "barn", "shelter", "water", "nutrition", "parasite",
	"worm", "ticks", "mastitis", "foot", "mouth", "bloat", "pneumonia",
}

// RefusalMessage is the fixed assistant turn appended when a message is
// rejected by the gate. No request is sent in that case.
const RefusalMessage = "I specialize only in cattle health and management. Please ask questions about:\n" +
	"• Cattle diseases and symptoms\n" +
	"• Milk production and dairy cattle\n" +
	"• Breeding and calf care\n" +
	"• Cattle nutrition and feeding\n" +
	"• Shelter and pasture management\n" +
	"• Cattle behavior and health monitoring"

// =============================================================================
// GATE
// =============================================================================

// IsInDomain reports whether the message contains at least one vocabulary
// term. Matching is case-insensitive substring containment, not word-boundary
// tokenization: a term appearing inside a longer word still matches. That is
// intentionally permissive and mirrors the backend's own frontend.
func IsInDomain(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range cattleKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Keywords returns a copy of the vocabulary, for display in help text.
func Keywords() []string {
	out := make([]string, len(cattleKeywords))
	copy(out, cattleKeywords)
	return out
}
