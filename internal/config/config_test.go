package config

import (
	"os"
	"path/filepath"
	"testing"

	"cotviz-api/pkg/llm"
	"cotviz-api/pkg/visualizer"
)

// Test_moduleConfig_envExpansion verifies that module configs expand environment
// variables correctly when loaded directly via their LoadConfig functions.
func Test_moduleConfig_envExpansion(t *testing.T) {
	dir := t.TempDir()

	llmYAML := []byte(`
base_url: ${COTVIZ_BASE_URL}
api_key: ${COTVIZ_API_KEY}
default_model: gpt-x
timeout: 2s
`)
	llmPath := filepath.Join(dir, "llm.yaml")
	if err := os.WriteFile(llmPath, llmYAML, 0o600); err != nil {
		t.Fatalf("write llm.yaml: %v", err)
	}

	vizYAML := []byte(`
model: fast
timeout: 45s
journal_dir: ${COTVIZ_JOURNAL_DIR}
`)
	vizPath := filepath.Join(dir, "visualizer.yaml")
	if err := os.WriteFile(vizPath, vizYAML, 0o600); err != nil {
		t.Fatalf("write visualizer.yaml: %v", err)
	}

	t.Setenv("COTVIZ_BASE_URL", "https://gateway.example/v1")
	t.Setenv("COTVIZ_API_KEY", "test-key")
	t.Setenv("COTVIZ_JOURNAL_DIR", filepath.Join(dir, "journal"))

	llmCfg, err := llm.LoadConfig(llmPath)
	if err != nil {
		t.Fatalf("llm.LoadConfig: %v", err)
	}
	if got := llmCfg.BaseURL; got != "https://gateway.example/v1" {
		t.Fatalf("LLM.BaseURL not expanded, got %q", got)
	}
	if got := llmCfg.APIKey; got != "test-key" {
		t.Fatalf("LLM.APIKey not expanded, got %q", got)
	}
	if got := llmCfg.DefaultModel; got != "gpt-x" {
		t.Fatalf("LLM.DefaultModel got %q", got)
	}

	vizCfg, err := visualizer.LoadConfig(vizPath)
	if err != nil {
		t.Fatalf("visualizer.LoadConfig: %v", err)
	}
	if vizCfg.Model != "fast" {
		t.Fatalf("Visualizer.Model got %q", vizCfg.Model)
	}
	if vizCfg.Timeout.String() != "45s" {
		t.Fatalf("Visualizer.Timeout not parsed, got %s", vizCfg.Timeout)
	}
	if vizCfg.JournalDir != filepath.Join(dir, "journal") {
		t.Fatalf("Visualizer.JournalDir not expanded, got %q", vizCfg.JournalDir)
	}
}

func TestLoad_hydratesSections(t *testing.T) {
	dir := t.TempDir()

	llmYAML := []byte(`
default_model: llama3:latest
timeout: 5s
`)
	if err := os.WriteFile(filepath.Join(dir, "llm.yaml"), llmYAML, 0o600); err != nil {
		t.Fatalf("write llm.yaml: %v", err)
	}

	mainYAML := []byte(`
Name: cotviz-api
Host: 127.0.0.1
Port: 8080
Env: test
LLM:
  File: llm.yaml
`)
	mainPath := filepath.Join(dir, "cotviz.yaml")
	if err := os.WriteFile(mainPath, mainYAML, 0o600); err != nil {
		t.Fatalf("write cotviz.yaml: %v", err)
	}

	cfg, err := Load(mainPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Value == nil {
		t.Fatalf("LLM section not hydrated")
	}
	if cfg.LLM.Value.DefaultModel != "llama3:latest" {
		t.Fatalf("LLM.DefaultModel got %q", cfg.LLM.Value.DefaultModel)
	}
	if cfg.Visualizer.Value != nil {
		t.Fatalf("Visualizer section should stay nil when unset")
	}
	if cfg.BaseDir() != dir {
		t.Fatalf("BaseDir got %q, want %q", cfg.BaseDir(), dir)
	}
	if !cfg.IsTestEnv() {
		t.Fatalf("env test should report as test env")
	}
}

func TestValidate_TTLBounds(t *testing.T) {
	cfg := &Config{}
	cfg.TTL.Short = 0
	cfg.TTL.Medium = 60
	cfg.TTL.Long = 300
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected ttl.short validation error")
	}
}

func TestValidate_Env(t *testing.T) {
	cfg := &Config{}
	cfg.TTL = CacheTTL{Short: 10, Medium: 60, Long: 300}
	cfg.Env = "staging"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected env validation error")
	}

	cfg.Env = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty env should default to test, got %v", err)
	}
	if cfg.Env != "test" {
		t.Fatalf("Env got %q, want test", cfg.Env)
	}
}
