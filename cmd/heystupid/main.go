package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"heystupid/pkg/app"

	"github.com/spf13/cobra"
)

const exitUsage = 2

// usageError marks command line mistakes so they exit with status 2.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := 0
	cmd := newRootCmd(stdin, &code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(stderr, "Run 'heystupid --help' for usage.")
			return exitUsage
		}
		return 1
	}
	return code
}

func newRootCmd(stdin io.Reader, code *int) *cobra.Command {
	var opts app.Options
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "heystupid [prompt]",
		Short: "Ask a chat model about piped command output",
		Example: `  heystupid "What is the capital of France?"
  some_command | heystupid "What went wrong?"
  heystupid --model gpt-4 "Explain Docker networking"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			if len(args) == 1 {
				opts.Prompt = args[0]
			}
			*code = app.Run(cmd.Context(), opts, app.Streams{
				Stdin:  stdin,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.Flags().StringVar(&opts.Model, "model", "", "Model to use instead of the configured one.")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file path (default ~/.heystupid.config).")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the request payload instead of sending it.")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Also copy the reply to the clipboard (OSC 52).")
	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version information and exit.")

	return cmd
}
