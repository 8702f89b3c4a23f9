package ai

import (
	"testing"

	"heystupid/pkg/config"
	"heystupid/pkg/system"
)

func testSettings() config.Settings {
	cfg := config.Default()
	cfg.BasePrompt = "be brief"
	return cfg
}

func TestBuildRequest_MessageOrder(t *testing.T) {
	stats := system.Stats{system.KeyOS: "linux", system.KeyHostname: "box"}

	tests := []struct {
		name   string
		stdin  string
		prompt string
		want   []Message
	}{
		{
			name:   "stdin and prompt",
			stdin:  "permission denied",
			prompt: "why?",
			want: []Message{
				{Role: RoleSystem, Content: `{"hostname":"box","os":"linux"}`},
				{Role: RoleSystem, Content: "be brief"},
				{Role: RoleUser, Content: "stdin: permission denied"},
				{Role: RoleSystem, Content: "why?"},
			},
		},
		{
			name:  "stdin only",
			stdin: "total 0",
			want: []Message{
				{Role: RoleSystem, Content: `{"hostname":"box","os":"linux"}`},
				{Role: RoleSystem, Content: "be brief"},
				{Role: RoleUser, Content: "stdin: total 0"},
			},
		},
		{
			name:   "prompt only",
			prompt: "What is Rust?",
			want: []Message{
				{Role: RoleSystem, Content: `{"hostname":"box","os":"linux"}`},
				{Role: RoleSystem, Content: "be brief"},
				{Role: RoleSystem, Content: "What is Rust?"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BuildRequest(stats, testSettings(), tt.stdin, tt.prompt, "")

			if len(req.Messages) != len(tt.want) {
				t.Fatalf("Expected %d messages, got %d: %+v", len(tt.want), len(req.Messages), req.Messages)
			}
			for i, want := range tt.want {
				if req.Messages[i] != want {
					t.Errorf("Message %d = %+v, want %+v", i, req.Messages[i], want)
				}
			}
		})
	}
}

func TestBuildRequest_Model(t *testing.T) {
	settings := testSettings()
	settings.Model = "gpt-4o"

	if req := BuildRequest(system.Stats{}, settings, "x", "", ""); req.Model != "gpt-4o" {
		t.Errorf("Expected settings model, got %q", req.Model)
	}
	if req := BuildRequest(system.Stats{}, settings, "x", "", "  o3-mini "); req.Model != "o3-mini" {
		t.Errorf("Expected override model, got %q", req.Model)
	}
}

func TestBuildRequest_DoesNotMutateStats(t *testing.T) {
	stats := system.Stats{system.KeyUser: "alice"}
	_ = BuildRequest(stats, testSettings(), "in", "p", "")

	if len(stats) != 1 || stats[system.KeyUser] != "alice" {
		t.Fatalf("BuildRequest modified stats: %v", stats)
	}
}
