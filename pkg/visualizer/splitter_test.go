package visualizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitResponse(t *testing.T) {
	t.Run("marker present", func(t *testing.T) {
		thinking, answer := SplitResponse("I will analyze the question. Then I will plan my approach. Final answer: 42")
		require.Equal(t, "I will analyze the question. Then I will plan my approach.", thinking)
		require.Equal(t, "42", answer)
	})

	t.Run("marker match is case-insensitive, casing preserved", func(t *testing.T) {
		thinking, answer := SplitResponse("Some Reasoning Here. FINAL ANSWER: The Moon")
		require.Equal(t, "Some Reasoning Here.", thinking)
		require.Equal(t, "The Moon", answer)
	})

	t.Run("marker absent falls back to sentinel", func(t *testing.T) {
		thinking, answer := SplitResponse("  just thinking, no conclusion  ")
		require.Equal(t, "just thinking, no conclusion", thinking)
		require.Equal(t, AnswerFallback, answer)
	})

	t.Run("first marker wins", func(t *testing.T) {
		thinking, answer := SplitResponse("thinking. Final answer: A. Final answer: B")
		require.Equal(t, "thinking.", thinking)
		require.Equal(t, "A. Final answer: B", answer)
	})

	t.Run("multi-byte text before the marker keeps the split point", func(t *testing.T) {
		// U+212A (Kelvin sign) shrinks under strings.ToLower; the split
		// index must be computed against the original bytes.
		thinking, answer := SplitResponse("K analysis done. Final answer: 42")
		require.Equal(t, "K analysis done.", thinking)
		require.Equal(t, "42", answer)

		thinking, answer = SplitResponse("温度は300Kです。 Final answer: 300 K")
		require.Equal(t, "温度は300Kです。", thinking)
		require.Equal(t, "300 K", answer)
	})

	t.Run("empty input", func(t *testing.T) {
		thinking, answer := SplitResponse("")
		require.Empty(t, thinking)
		require.Equal(t, AnswerFallback, answer)
	})

	t.Run("splitting is idempotent on the reasoning half", func(t *testing.T) {
		thinking, _ := SplitResponse("step one. step two. Final answer: done")
		again, answer := SplitResponse(thinking)
		require.Equal(t, thinking, again)
		require.Equal(t, AnswerFallback, answer)
	})
}
