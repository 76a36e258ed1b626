// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements command-line parsing and the non-TUI subcommands
for herdwatch.

# Commands

  - (default)  Start the TUI
  - ask        One-shot cattle question with markdown-rendered output
  - chat       Interactive REPL with input history
  - status     Backend connectivity check
  - config     Show and modify the TOML configuration
  - version    Version information

# Structure

  - cli.go        - Parse, global flags, usage text
  - args.go       - ArgParser for subcommand flag handling
  - terminal.go   - TTY detection, width detection, color control
  - helpers.go    - API client and identity construction
  - ask.go        - ask handler and markdown rendering
  - chat.go       - chat REPL with liner history
  - status.go     - connectivity probe
  - config_cmd.go - config show/set/reset/path

The ask and chat handlers apply the same topic gate as the TUI chatbot:
off-topic questions are refused locally and never sent to the backend.
*/
package cli
