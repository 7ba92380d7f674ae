package visualizer

import "strings"

// StageDuration is the synthetic per-stage duration in time units. Durations
// are estimates for layout, not measured latencies.
const StageDuration = 0.5

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// ParseStages segments reasoning text into classified stages. Sentences are
// split on runs of '.', '!' and '?'; candidates that are empty after trimming
// are dropped and consume neither an index nor clock time. Text without any
// terminal punctuation yields a single stage spanning the whole text.
func ParseStages(thinking string) []Stage {
	candidates := strings.FieldsFunc(thinking, isSentenceTerminal)

	stages := make([]Stage, 0, len(candidates))
	clock := 0.0
	for _, candidate := range candidates {
		sentence := strings.TrimSpace(candidate)
		if sentence == "" {
			continue
		}
		stages = append(stages, Stage{
			Index:    len(stages),
			Category: Classify(sentence),
			Content:  sentence,
			Start:    clock,
			Duration: StageDuration,
			End:      clock + StageDuration,
		})
		clock += StageDuration
	}
	return stages
}
