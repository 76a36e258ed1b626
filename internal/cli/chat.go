// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the herdwatch CLI.
//
// Handles the "herdwatch chat" command which provides an interactive REPL
// for talking to the cattle chatbot.
//
// Command: chat
// Short:   Start an interactive chat session
//
// Examples:
//   herdwatch chat
//   herdwatch chat --name Ana --location "Green Valley"
//   herdwatch chat --server http://10.0.0.5:5000
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /topics             List the recognized cattle topics
//   /clear, /c          Clear conversation history
//   /history            Show conversation history
//   /quit, /q           Exit chat
//   Ctrl+C, Ctrl+D      Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/herdwatch-tui/internal/api"
	"github.com/jeranaias/herdwatch-tui/internal/config"
	"github.com/jeranaias/herdwatch-tui/internal/model"
	"github.com/jeranaias/herdwatch-tui/internal/session"
	"github.com/jeranaias/herdwatch-tui/internal/topic"
	"github.com/jeranaias/herdwatch-tui/internal/ui/styles"
	"github.com/jeranaias/herdwatch-tui/internal/util"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// Supports arrow keys for history navigation and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "chat_history")

	cli := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Supports history navigation with arrow keys.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// chatSession holds the state for an interactive chat session.
type chatSession struct {
	client     *api.Client
	identity   model.Identity
	transcript *model.Transcript
	inputCLI   *ChatCLI
	quiet      bool
	verbose    bool
	questions  int
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat handles the "chat" command.
func HandleChat(args Args) {
	if err := RequiresTTY("chat"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sess := &chatSession{
		client:     NewAPIClient(args),
		identity:   identityFromArgs(args),
		transcript: model.NewTranscript(),
		inputCLI:   NewChatCLI(),
		quiet:      args.Quiet,
		verbose:    args.Verbose,
	}
	defer sess.inputCLI.Close()

	if !sess.quiet {
		printChatBanner(sess)
	}

	// REPL loop with readline-like editing and history
	for {
		input, err := sess.inputCLI.ReadInput(promptStyle.Render("herdwatch> "))
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D
			fmt.Println()
			printExitSummary(sess)
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if !handleSlashCommand(input, sess) {
				printExitSummary(sess)
				return
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			printExitSummary(sess)
			return
		}

		processChatMessage(sess, input)
	}
}

// printChatBanner greets the farmer and shows the onboarding suggestions.
// The personalized greeting is best-effort: if the backend is unreachable
// the fallback greeting is shown and the REPL starts anyway.
func printChatBanner(sess *chatSession) {
	greeting := api.FallbackGreeting(sess.identity.Name)
	if g, err := sess.client.FetchGreeting(context.Background(), sess.identity); err == nil && g != "" {
		greeting = g
	}

	fmt.Println(welcomeStyle.Render(greeting))
	fmt.Println()
	fmt.Println(WrapText(session.OnboardingMessage, GetTerminalWidth()))
	fmt.Println()
	fmt.Println(infoStyle.Render("Type /help for commands, /quit to exit."))
	fmt.Println()
}

// processChatMessage runs one message through the gate and the backend.
func processChatMessage(sess *chatSession, input string) {
	sess.transcript.AppendUser(input)
	sess.questions++

	if !topic.IsInDomain(input) {
		sess.transcript.AppendAssistant(topic.RefusalMessage)
		fmt.Println(renderAnswer(topic.RefusalMessage))
		return
	}

	reply, err := sess.client.SubmitChatMessage(context.Background(), input, sess.identity)
	if err != nil {
		var msg string
		if api.IsApplication(err) {
			msg = session.ChatApplicationFailure
		} else {
			msg = session.ChatTransportFailure
		}
		sess.transcript.AppendAssistant(msg)
		fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
		if sess.verbose {
			fmt.Fprintf(os.Stderr, "  %v\n", err)
		}
		return
	}

	sess.transcript.AppendAssistant(reply)
	fmt.Println(renderAnswer(reply))
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand returns false when the REPL should exit.
func handleSlashCommand(input string, sess *chatSession) bool {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/help", "/h":
		fmt.Println(infoStyle.Render(`Commands:
  /help, /h      Show this help
  /topics        List the recognized cattle topics
  /clear, /c     Clear conversation history
  /history       Show conversation history
  /quit, /q      Exit chat`))
		return true

	case "/topics":
		fmt.Println(infoStyle.Render("Questions mentioning any of these terms are sent to the advisor:"))
		fmt.Println(infoStyle.Render(formatKeywordColumns(topic.Keywords(), GetTerminalWidth())))
		return true

	case "/clear", "/c":
		sess.transcript.Clear()
		fmt.Println(infoStyle.Render("Conversation cleared."))
		return true

	case "/history":
		if sess.transcript.IsEmpty() {
			fmt.Println(infoStyle.Render("No conversation yet."))
			return true
		}
		for _, msg := range sess.transcript.Messages() {
			fmt.Printf("%s %s\n", promptStyle.Render(msg.Role.DisplayName()+":"), msg.Content)
		}
		return true

	case "/quit", "/q", "/exit":
		return false

	default:
		fmt.Println(infoStyle.Render("Unknown command. Type /help for commands."))
		return true
	}
}

// formatKeywordColumns lays the vocabulary out in fixed-width columns that
// fit the given terminal width.
func formatKeywordColumns(words []string, width int) string {
	colWidth := 0
	for _, w := range words {
		if len(w)+2 > colWidth {
			colWidth = len(w) + 2
		}
	}
	if colWidth == 0 {
		return ""
	}
	cols := width / colWidth
	if cols < 1 {
		cols = 1
	}

	var b strings.Builder
	for i, w := range words {
		b.WriteString(util.PadRight(w, colWidth))
		if (i+1)%cols == 0 && i != len(words)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// printExitSummary prints a short session summary on exit.
func printExitSummary(sess *chatSession) {
	if sess.quiet || sess.questions == 0 {
		return
	}
	fmt.Println(infoStyle.Render(fmt.Sprintf("Goodbye! %d question(s) this session.", sess.questions)))
}
