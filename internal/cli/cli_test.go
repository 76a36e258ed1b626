// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"

	"github.com/jeranaias/herdwatch-tui/internal/topic"
)

// =============================================================================
// COMMAND PARSING TESTS
// =============================================================================

func TestParseArgsDefaultsToTUI(t *testing.T) {
	cmd, _ := parseArgs(nil)
	if cmd != CmdTUI {
		t.Errorf("parseArgs(nil) = %v, want CmdTUI", cmd)
	}
}

func TestParseArgsCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"ask", []string{"ask", "what", "causes", "mastitis"}, CmdAsk},
		{"chat", []string{"chat"}, CmdChat},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"config", []string{"config", "show"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"--help"}, CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := parseArgs(tt.argv)
			if cmd != tt.want {
				t.Errorf("parseArgs(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseArgsAskJoinsQuery(t *testing.T) {
	cmd, args := parseArgs([]string{"ask", "what", "causes", "mastitis?"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "what causes mastitis?" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseArgsBareQuestionBecomesAsk(t *testing.T) {
	cmd, args := parseArgs([]string{"how", "much", "feed", "per", "cow"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "how much feed per cow" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	remaining, args := parseGlobalFlags([]string{
		"--server", "http://10.0.0.5:5000",
		"--name=Ana",
		"--location", "Green Valley",
		"--json", "-q", "-v",
		"chat",
	})

	if args.Server != "http://10.0.0.5:5000" {
		t.Errorf("Server = %q", args.Server)
	}
	if args.Name != "Ana" {
		t.Errorf("Name = %q", args.Name)
	}
	if args.Location != "Green Valley" {
		t.Errorf("Location = %q", args.Location)
	}
	if !args.JSON || !args.Quiet || !args.Verbose {
		t.Errorf("bool flags = %+v", args)
	}
	if len(remaining) != 1 || remaining[0] != "chat" {
		t.Errorf("remaining = %v", remaining)
	}
}

func TestParseArgsConfigSubcommand(t *testing.T) {
	_, args := parseArgs([]string{"config", "set", "server_url", "http://x:5000"})
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q, want set", args.Subcommand)
	}
	if len(args.Raw) != 3 {
		t.Errorf("Raw = %v", args.Raw)
	}
}

// =============================================================================
// ARG PARSER TESTS
// =============================================================================

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"set", "server_url", "http://x:5000", "--json", "--format=toml"})

	if p.Subcommand() != "set" {
		t.Errorf("Subcommand() = %q", p.Subcommand())
	}
	if p.Positional(1) != "server_url" {
		t.Errorf("Positional(1) = %q", p.Positional(1))
	}
	if p.Positional(2) != "http://x:5000" {
		t.Errorf("Positional(2) = %q", p.Positional(2))
	}
	if p.Positional(9) != "" {
		t.Errorf("Positional(9) = %q, want empty", p.Positional(9))
	}
	if !p.BoolFlag("json") {
		t.Error("BoolFlag(json) = false")
	}
	if p.Flag("format") != "toml" {
		t.Errorf("Flag(format) = %q", p.Flag("format"))
	}
	if p.FlagOr("missing", "fallback") != "fallback" {
		t.Errorf("FlagOr(missing) = %q", p.FlagOr("missing", "fallback"))
	}
}

func TestArgParserExplicitBoolValues(t *testing.T) {
	p := NewArgParser([]string{"--json=false", "--confirm=true"})
	if p.BoolFlag("json") {
		t.Error("--json=false should parse as false")
	}
	if !p.BoolFlag("confirm") {
		t.Error("--confirm=true should parse as true")
	}
}

// =============================================================================
// TEXT WRAPPING TESTS
// =============================================================================

func TestWrapTextShortLineUnchanged(t *testing.T) {
	got := WrapText("short line", 40)
	if got != "short line" {
		t.Errorf("WrapText = %q", got)
	}
}

func TestWrapTextWrapsLongLine(t *testing.T) {
	input := strings.Repeat("word ", 30)
	got := WrapText(strings.TrimSpace(input), 40)

	for i, line := range strings.Split(got, "\n") {
		if len(line) > 40 {
			t.Errorf("line %d is %d chars, exceeds width: %q", i, len(line), line)
		}
	}
}

func TestWrapTextPreservesNewlines(t *testing.T) {
	input := "first\nsecond\nthird"
	got := WrapText(input, 40)
	if got != input {
		t.Errorf("WrapText = %q, want unchanged", got)
	}
}

// =============================================================================
// TOPIC LISTING TESTS
// =============================================================================

func TestFormatKeywordColumnsListsEveryTerm(t *testing.T) {
	out := formatKeywordColumns(topic.Keywords(), 80)
	for _, kw := range topic.Keywords() {
		if !strings.Contains(out, kw) {
			t.Errorf("keyword %q missing from column layout", kw)
		}
	}
	for i, line := range strings.Split(out, "\n") {
		if len(strings.TrimRight(line, " ")) > 80 {
			t.Errorf("line %d exceeds terminal width: %q", i, line)
		}
	}
}

func TestFormatKeywordColumnsNarrowTerminal(t *testing.T) {
	// One column per line when nothing wider fits.
	out := formatKeywordColumns([]string{"cattle", "mastitis"}, 5)
	if len(strings.Split(out, "\n")) != 2 {
		t.Errorf("narrow layout = %q, want one term per line", out)
	}
}

func TestFormatKeywordColumnsEmpty(t *testing.T) {
	if got := formatKeywordColumns(nil, 80); got != "" {
		t.Errorf("formatKeywordColumns(nil) = %q, want empty", got)
	}
}
