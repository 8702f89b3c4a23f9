package ai

import (
	"strings"

	"heystupid/pkg/config"
	"heystupid/pkg/system"
)

const stdinPrefix = "stdin: "

// BuildRequest assembles the request payload. Message order is fixed:
// stats, base prompt, piped input (if any), prompt (if any). The prompt is
// sent as a trailing system message so it reads as an instruction about the
// piped text.
func BuildRequest(stats system.Stats, settings config.Settings, stdinText, prompt, modelOverride string) ChatRequest {
	model := strings.TrimSpace(modelOverride)
	if model == "" {
		model = settings.Model
	}

	messages := []Message{
		{Role: RoleSystem, Content: stats.JSON()},
		{Role: RoleSystem, Content: settings.BasePrompt},
	}
	if stdinText != "" {
		messages = append(messages, Message{Role: RoleUser, Content: stdinPrefix + stdinText})
	}
	if prompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: prompt})
	}

	return ChatRequest{
		Model:    model,
		Messages: messages,
	}
}
