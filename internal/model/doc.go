// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by the herdwatch client:
// the operator identity, cattle vital-sign readings, health assessments
// returned by the backend, and the chat transcript.
//
// All types here are plain data with no UI or network dependencies. The
// session package owns their lifecycle; the ui and cli packages only read
// them for display.
package model
