// Package app runs the collect → configure → request → present pipeline
// for one invocation.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"heystupid/pkg/ai"
	"heystupid/pkg/ai/providers"
	"heystupid/pkg/config"
	"heystupid/pkg/input"
	"heystupid/pkg/logging"
	"heystupid/pkg/present"
	"heystupid/pkg/system"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
)

const promptPreviewWidth = 60

// ProviderFactory builds the API client for one run.
type ProviderFactory func(settings config.Settings, runID string) ai.Provider

// Options carries the parsed command line.
type Options struct {
	Prompt     string
	Model      string // overrides the configured model when set
	ConfigPath string // defaults to config.DefaultPath()
	DryRun     bool   // print the request payload instead of sending it
	Copy       bool   // also copy the reply to the clipboard

	RunID       string
	Probe       system.Probe
	Now         func() time.Time
	NewProvider ProviderFactory
}

// Streams are the process's standard streams.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes one invocation and returns the process exit status.
func Run(ctx context.Context, opts Options, streams Streams) int {
	logging.Discard()
	out := present.Presenter{Stdout: streams.Stdout, Stderr: streams.Stderr}

	probe := opts.Probe
	if probe == nil {
		probe = system.Select()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stats := probe.Collect(now())

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		return out.Fail(err)
	}
	if err := settings.Validate(); err != nil {
		return out.Fail(fmt.Errorf("%s: %w", configPath, err))
	}

	_, closer, err := logging.Init(settings)
	if err != nil {
		// Logging is best effort; the run continues without it.
		logging.Discard()
	}
	defer closer.Close()

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	log := slog.With("run_id", runID)

	log.Info("run_started",
		"config_path", configPath,
		"probe", probe.Name(),
		"stats_keys", len(stats),
	)
	if len(settings.Ignored) > 0 {
		log.Warn("config_keys_ignored", "keys", settings.Ignored)
	}
	if len(settings.Rejected) > 0 {
		log.Warn("config_values_rejected", "values", settings.Rejected)
	}
	if !settings.HasAPIKey() {
		log.Warn("api_key_missing", "config_path", configPath)
	}

	in, err := input.Collect(streams.Stdin, opts.Prompt)
	if err != nil {
		log.Error("input_invalid", "error", err)
		return out.Fail(err)
	}
	log.Debug("input_collected",
		"stdin_bytes", len(in.Stdin),
		"prompt_preview", runewidth.Truncate(in.Prompt, promptPreviewWidth, "…"),
	)

	req := ai.BuildRequest(stats, settings, in.Stdin, in.Prompt, opts.Model)
	log.Info("request_built", "model", req.Model, "messages", len(req.Messages))

	if opts.DryRun {
		return printPayload(out, req)
	}

	newProvider := opts.NewProvider
	if newProvider == nil {
		newProvider = defaultProvider
	}
	provider := newProvider(settings, runID)

	start := time.Now()
	resp, err := provider.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error("request_failed", "error", err, "duration", time.Since(start))
		return out.Fail(err)
	}
	log.Info("response_received",
		"model", resp.Model,
		"choices", resp.Choices,
		"content_bytes", len(resp.Content),
		"duration", time.Since(start),
	)

	code := out.Reply(resp.Content)
	if code == present.ExitOK && opts.Copy {
		out.Copy(resp.Content)
	}
	return code
}

func defaultProvider(settings config.Settings, runID string) ai.Provider {
	return providers.NewOpenAIProvider(settings, providers.WithRequestID(runID))
}

func printPayload(out present.Presenter, req ai.ChatRequest) int {
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return out.Fail(fmt.Errorf("failed to encode request: %w", err))
	}
	return out.Reply(string(data))
}
