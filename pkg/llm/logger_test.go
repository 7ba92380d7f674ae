package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"debug", logx.DebugLevel},
		{"info", logx.InfoLevel},
		{"error", logx.ErrorLevel},
		{"severe", logx.SevereLevel},
		{"fatal", logx.SevereLevel},
		{"", logx.InfoLevel},
		{"bogus", logx.InfoLevel},
		{"  INFO  ", logx.InfoLevel},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestMsgWithFields(t *testing.T) {
	require.Equal(t, "plain", msgWithFields("plain", nil))

	got := msgWithFields("chat", Fields{"model": "llama3:latest"})
	require.Contains(t, got, "chat | ")
	require.Contains(t, got, "model=llama3:latest")
}
