package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		DefaultModel: "llama3:latest",
		Timeout:      10 * time.Second,
		MaxRetries:   1,
		LogLevel:     "error",
		Models: map[string]ModelConfig{
			"fast": {ModelName: "llama3.2:1b"},
		},
	}
}

const completionBody = `{
	"id": "chatcmpl-123",
	"object": "chat.completion",
	"created": 1736000000,
	"model": "llama3:latest",
	"choices": [{
		"index": 0,
		"message": {"role": "assistant", "content": "First I analyze. Final answer: 42"},
		"finish_reason": "stop"
	}],
	"usage": {"prompt_tokens": 21, "completion_tokens": 9, "total_tokens": 30}
}`

func TestNewClient(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewClient(nil)
		require.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewClient(&Config{})
		require.Error(t, err)
	})

	t.Run("config is cloned", func(t *testing.T) {
		cfg := testConfig("http://localhost:11434/v1")
		client, err := NewClient(cfg)
		require.NoError(t, err)
		cfg.DefaultModel = "mutated"
		require.Equal(t, "llama3:latest", client.GetConfig().DefaultModel)
	})
}

func TestClientChat(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/chat/completions", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completionBody))
		}))
		defer srv.Close()

		client, err := NewClient(testConfig(srv.URL + "/v1"))
		require.NoError(t, err)

		resp, err := client.Chat(context.Background(), &ChatRequest{
			Messages: []Message{{Role: "user", Content: "think about 42"}},
		})
		require.NoError(t, err)
		require.Equal(t, "First I analyze. Final answer: 42", resp.Text())
		require.Equal(t, 30, resp.Usage.TotalTokens)
	})

	t.Run("nil request", func(t *testing.T) {
		client, err := NewClient(testConfig("http://localhost:11434/v1"))
		require.NoError(t, err)
		_, err = client.Chat(context.Background(), nil)
		require.Error(t, err)
	})

	t.Run("empty messages", func(t *testing.T) {
		client, err := NewClient(testConfig("http://localhost:11434/v1"))
		require.NoError(t, err)
		_, err = client.Chat(context.Background(), &ChatRequest{})
		require.ErrorContains(t, err, "at least one message")
	})

	t.Run("retries on 503", func(t *testing.T) {
		var calls int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt64(&calls, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completionBody))
		}))
		defer srv.Close()

		client, err := NewClient(testConfig(srv.URL+"/v1"), WithRetryHandler(NewRetryHandler(RetryConfig{
			MaxRetries:     2,
			InitialBackoff: time.Millisecond,
		})))
		require.NoError(t, err)

		resp, err := client.Chat(context.Background(), &ChatRequest{
			Messages: []Message{{Role: "user", Content: "hello"}},
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Text())
		require.EqualValues(t, 2, atomic.LoadInt64(&calls))
	})
}

func TestBuildChatParams(t *testing.T) {
	client, err := NewClient(testConfig("http://localhost:11434/v1"))
	require.NoError(t, err)

	t.Run("default model", func(t *testing.T) {
		_, modelID, err := client.buildChatParams(&ChatRequest{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		require.NoError(t, err)
		require.Equal(t, "llama3:latest", modelID)
	})

	t.Run("alias resolution", func(t *testing.T) {
		_, modelID, err := client.buildChatParams(&ChatRequest{
			Model:    "fast",
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		require.NoError(t, err)
		require.Equal(t, "llama3.2:1b", modelID)
	})

	t.Run("unknown alias passes through", func(t *testing.T) {
		_, modelID, err := client.buildChatParams(&ChatRequest{
			Model:    "qwen2:0.5b",
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		require.NoError(t, err)
		require.Equal(t, "qwen2:0.5b", modelID)
	})
}
