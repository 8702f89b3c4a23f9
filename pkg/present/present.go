// Package present writes the reply or a failure message and picks the
// process exit status.
package present

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"heystupid/pkg/ai"
	"heystupid/pkg/config"
	"heystupid/pkg/input"

	"charm.land/lipgloss/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FF5F5F")).
	Bold(true)

// Presenter owns the two output streams. Stdout only ever carries a reply.
type Presenter struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Reply prints the model's reply followed by a newline.
func (p Presenter) Reply(content string) int {
	if _, err := fmt.Fprintln(p.Stdout, content); err != nil {
		slog.Error("reply_write_failed", "error", err)
		return ExitFailure
	}
	return ExitOK
}

// Copy places content on the system clipboard through an OSC 52 sequence
// written to stderr. It returns false when stderr is not a terminal.
func (p Presenter) Copy(content string) bool {
	if !input.IsTerminal(p.Stderr) {
		slog.Warn("clipboard_copy_skipped", "reason", "stderr is not a terminal")
		return false
	}
	_, _ = fmt.Fprint(p.Stderr, osc52.New(content))
	return true
}

// Fail writes a user-facing message for err to stderr and returns the exit
// status.
func (p Presenter) Fail(err error) int {
	msg := Message(err)
	if input.IsTerminal(p.Stderr) {
		head, rest, _ := strings.Cut(msg, "\n")
		msg = errorStyle.Render(head)
		if rest != "" {
			msg += "\n" + rest
		}
	}
	_, _ = fmt.Fprintln(p.Stderr, msg)
	return ExitFailure
}

// Message maps an error kind to the text shown to the user.
func Message(err error) string {
	var (
		notFound *config.NotFoundError
		usage    *input.UsageError
		reqErr   *ai.APIRequestError
	)

	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("Configuration file not found: %s\n"+
			"Please create this file with your OpenAI API key:\n"+
			"  echo 'openai_api_key=\"your_api_key_here\"' > %s", notFound.Path, notFound.Path)
	case errors.As(err, &usage):
		return "Error: No input provided.\n" + input.UsageText
	case errors.As(err, &reqErr):
		return fmt.Sprintf("Failed to send request to OpenAI: %v", reqErr.Cause)
	case errors.Is(err, ai.ErrEmptyResponse):
		return "No response received from OpenAI"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

