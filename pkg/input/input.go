// Package input gathers the piped text and the prompt argument.
package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// UsageText lists invocation examples shown when no input is given.
const UsageText = `Usage examples:
  heystupid 'What is Rust?'
  echo 'some text' | heystupid 'Explain this'
  ls /etc/ | heystupid 'What OS is this?'`

// UsageError is returned when neither piped text nor a prompt was given.
type UsageError struct{}

func (*UsageError) Error() string {
	return "no input provided"
}

// Input is what the user supplied for one invocation.
type Input struct {
	Stdin  string
	Prompt string
}

// IsTerminal reports whether stream is attached to a terminal. Streams that
// do not expose a file descriptor, such as buffers, are never terminals.
func IsTerminal(stream any) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Collect reads stdin when it is not a terminal and combines it with the
// prompt. Piped text is stripped of ANSI escape sequences and surrounding
// whitespace.
func Collect(stdin io.Reader, prompt string) (Input, error) {
	var in Input

	if stdin != nil && !IsTerminal(stdin) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Input{}, fmt.Errorf("failed to read piped input: %w", err)
		}
		in.Stdin = Clean(string(data))
	}
	in.Prompt = strings.TrimSpace(prompt)

	if in.Stdin == "" && in.Prompt == "" {
		return Input{}, &UsageError{}
	}
	return in, nil
}

// Clean removes terminal escape sequences and invalid UTF-8 and trims
// surrounding whitespace.
func Clean(s string) string {
	s = ansi.Strip(s)
	s = strings.ToValidUTF8(s, "")
	return strings.TrimSpace(s)
}
