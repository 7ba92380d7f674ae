package visualizer

import (
	"context"
	"errors"
	"time"

	"cotviz-api/pkg/llm"
	"cotviz-api/pkg/prompt"
)

// Engine runs the full text-to-stages pipeline: render prompt, call the LLM,
// split the response, parse and classify stages, aggregate chart series.
// Engines are immutable after construction and safe for concurrent use; all
// per-query state lives on the stack.
type Engine struct {
	cfg  *Config
	llm  llm.LLMClient
	tmpl *prompt.Template
}

// NewEngine wires an engine from config and an LLM client. The client is the
// only collaborator that blocks; everything else is pure computation.
func NewEngine(cfg *Config, client llm.LLMClient) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("visualizer: config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("visualizer: llm client is required")
	}
	tmpl, err := newPromptTemplate(cfg.PromptTemplate)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, llm: client, tmpl: tmpl}, nil
}

// GetConfig exposes the engine configuration.
func (e *Engine) GetConfig() *Config { return e.cfg }

// BuildPrompt renders the query into the analysis prompt.
func (e *Engine) BuildPrompt(query string) (string, error) {
	return e.tmpl.Render(PromptInputs{Query: query})
}

// Analyze runs one query through the pipeline. Transport failures are
// returned as-is; a response without the answer marker or without extractable
// sentences degrades to fallback values instead of failing.
func (e *Engine) Analyze(ctx context.Context, query string) (*Analysis, error) {
	promptStr, err := e.BuildPrompt(query)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := e.llm.Chat(callCtx, &llm.ChatRequest{
		Model: e.cfg.Model,
		Messages: []llm.Message{
			{Role: "user", Content: promptStr},
		},
	})
	if err != nil {
		return nil, err
	}

	thinking, answer := SplitResponse(resp.Text())
	stages := ParseStages(thinking)
	timeline, totals := Aggregate(stages)

	return &Analysis{
		Query:        query,
		Model:        resp.Model,
		PromptDigest: e.tmpl.Digest(),
		Thinking:     thinking,
		Answer:       answer,
		Stages:       stages,
		Timeline:     timeline,
		Totals:       totals,
		Elapsed:      time.Since(start),
	}, nil
}
