// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single question command handler for the herdwatch CLI.
//
// Handles the "herdwatch ask" command which sends one cattle question to
// the backend and prints the answer.
//
// Command: ask [question]
// Short:   Ask a single cattle question
//
// Examples:
//   herdwatch ask "What causes mastitis?"
//   herdwatch ask --json "Calf feeding tips"
//   herdwatch ask --name Ana --location "Green Valley" "Vaccination schedule?"
//
// Out-of-domain questions are refused locally with the same message the
// chatbot uses; no request is sent.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/herdwatch-tui/internal/api"
	"github.com/jeranaias/herdwatch-tui/internal/session"
	"github.com/jeranaias/herdwatch-tui/internal/topic"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer renders backend answers with formatting when stdout is
// a terminal. Falls back to plain text if initialization fails.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

// renderAnswer formats a backend answer for the terminal.
func renderAnswer(text string) string {
	if IsStdoutTTY() && markdownRenderer != nil {
		if out, err := markdownRenderer.Render(text); err == nil {
			return out
		}
	}
	return WrapText(text, GetTerminalWidth())
}

// =============================================================================
// ASK HANDLER
// =============================================================================

// HandleAsk handles the "ask" command.
func HandleAsk(args Args) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		fmt.Fprintln(os.Stderr, "Usage: herdwatch ask \"question\"")
		os.Exit(1)
	}

	// The topic gate runs locally: off-topic questions never hit the wire.
	if !topic.IsInDomain(query) {
		printAskResult(args, query, topic.RefusalMessage)
		return
	}

	client := NewAPIClient(args)
	reply, err := client.SubmitChatMessage(context.Background(), query, identityFromArgs(args))
	if err != nil {
		if api.IsApplication(err) {
			fmt.Fprintln(os.Stderr, session.ChatApplicationFailure)
		} else {
			fmt.Fprintln(os.Stderr, session.ChatTransportFailure)
		}
		if args.Verbose {
			fmt.Fprintf(os.Stderr, "  %v\n", err)
		}
		os.Exit(1)
	}

	printAskResult(args, query, reply)
}

// printAskResult writes the answer in the requested format.
func printAskResult(args Args, query, answer string) {
	if args.JSON {
		out, _ := json.MarshalIndent(map[string]string{
			"query":    query,
			"response": answer,
		}, "", "  ")
		fmt.Println(string(out))
		return
	}

	fmt.Print(renderAnswer(answer))
	if !strings.HasSuffix(answer, "\n") {
		fmt.Println()
	}
}
