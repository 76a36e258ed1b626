// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the client-side session and interaction state
// machine: the operator identity, the active UI mode, the chat transcript,
// and the single-flight request latches.
//
// The transition table:
//
//	Welcome -> Dashboard                    (Start, identity validated)
//	Dashboard -> HealthCheck | Chatbot      (open a panel)
//	HealthCheck <-> Chatbot                 (switching closes the sibling)
//	HealthCheck -> Results                  (successful assessment only)
//	any non-Welcome -> Dashboard            (CloseSubPanel)
//	any -> Welcome                          (Logout)
//
// No network request can be issued before Start succeeds, because the Begin*
// methods are only legal in modes unreachable from Welcome. Each dispatch
// carries a UUID token; Logout discards the tokens, so responses that arrive
// afterwards are detected as stale and dropped instead of resurrecting
// cleared state.
package session
