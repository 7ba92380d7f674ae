package visualizer

import "strings"

const (
	// answerMarker is matched case-insensitively; only the first occurrence
	// splits the response. Later occurrences stay inside the answer text.
	answerMarker = "final answer:"

	// AnswerFallback is returned when the model never emits the marker.
	AnswerFallback = "No explicit final answer provided"
)

// SplitResponse separates a raw model response into reasoning text and final
// answer text. It never fails: without a marker the whole (trimmed) response
// counts as reasoning and the answer falls back to AnswerFallback. Original
// casing is preserved in both halves.
func SplitResponse(raw string) (thinking, answer string) {
	idx := markerIndex(raw)
	if idx < 0 {
		return strings.TrimSpace(raw), AnswerFallback
	}
	thinking = strings.TrimSpace(raw[:idx])
	answer = strings.TrimSpace(raw[idx+len(answerMarker):])
	return thinking, answer
}

// markerIndex finds the first case-insensitive occurrence of the answer
// marker. The marker is pure ASCII, so folding per byte keeps indices valid
// on raw; strings.ToLower can change byte offsets (U+212A lowercases to a
// shorter k) and would shift the split point.
func markerIndex(raw string) int {
	for i := 0; i+len(answerMarker) <= len(raw); i++ {
		j := 0
		for ; j < len(answerMarker); j++ {
			c := raw[i+j]
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c != answerMarker[j] {
				break
			}
		}
		if j == len(answerMarker) {
			return i
		}
	}
	return -1
}
