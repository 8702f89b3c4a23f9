package input

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creack/pty"
)

func TestCollect_PipedAndPrompt(t *testing.T) {
	in, err := Collect(strings.NewReader("\n  drwxr-xr-x 2 root root 4096 etc  \n\n"), "  what is this?  ")
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if in.Stdin != "drwxr-xr-x 2 root root 4096 etc" {
		t.Errorf("Expected trimmed stdin, got %q", in.Stdin)
	}
	if in.Prompt != "what is this?" {
		t.Errorf("Expected trimmed prompt, got %q", in.Prompt)
	}
}

func TestCollect_PromptOnly(t *testing.T) {
	in, err := Collect(strings.NewReader(""), "What is Rust?")
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if in.Stdin != "" || in.Prompt != "What is Rust?" {
		t.Fatalf("Unexpected input: %+v", in)
	}
}

func TestCollect_StdinOnly(t *testing.T) {
	in, err := Collect(strings.NewReader("error: file not found"), "")
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if in.Stdin != "error: file not found" || in.Prompt != "" {
		t.Fatalf("Unexpected input: %+v", in)
	}
}

func TestCollect_NoInput(t *testing.T) {
	tests := []struct {
		name   string
		stdin  io.Reader
		prompt string
	}{
		{name: "empty pipe", stdin: strings.NewReader(""), prompt: ""},
		{name: "whitespace only", stdin: strings.NewReader(" \n\t "), prompt: "   "},
		{name: "nil stdin", stdin: nil, prompt: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Collect(tt.stdin, tt.prompt)
			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("Expected *UsageError, got %v", err)
			}
		})
	}
}

func TestCollect_StripsANSI(t *testing.T) {
	colored := "\x1b[1;31merror\x1b[0m: \x1b[33mdisk full\x1b[0m\n"
	in, err := Collect(strings.NewReader(colored), "")
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if in.Stdin != "error: disk full" {
		t.Fatalf("Expected ANSI codes stripped, got %q", in.Stdin)
	}
}

func TestCollect_ReadError(t *testing.T) {
	_, err := Collect(iotest.ErrReader(errors.New("broken pipe")), "prompt")
	if err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("Expected read error, got %v", err)
	}
}

func TestCollect_TerminalStdinNotRead(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if !IsTerminal(tty) {
		t.Fatal("Expected pty slave to be detected as a terminal")
	}

	// Collect would block forever reading a terminal, so returning at all
	// shows stdin was skipped.
	_, err = Collect(tty, "")
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("Expected *UsageError for terminal stdin without prompt, got %v", err)
	}

	in, err := Collect(tty, "hello")
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if in.Stdin != "" || in.Prompt != "hello" {
		t.Fatalf("Unexpected input: %+v", in)
	}
}

func TestIsTerminal_PlainReader(t *testing.T) {
	if IsTerminal(strings.NewReader("x")) {
		t.Fatal("Plain readers should be treated as pipes")
	}
}

func TestUsageText(t *testing.T) {
	for _, want := range []string{"heystupid 'What is Rust?'", "| heystupid 'Explain this'"} {
		if !strings.Contains(UsageText, want) {
			t.Errorf("UsageText missing %q", want)
		}
	}
}
