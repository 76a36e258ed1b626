// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Cattle Health Monitor backend.
//
// The backend exposes three JSON POST endpoints under /api: greeting,
// health-check, and chat. Every response uses the same envelope: a success
// flag plus either the operation payload or an error string. The client
// normalizes all failures into *ClientError with two categories:
//
//   - Transport: server unreachable, timeout, or a body that is not JSON
//   - Application: a well-formed response reporting success:false, on any
//     HTTP status
//
// Callers never retry automatically; retry is always a fresh user action.
package api
