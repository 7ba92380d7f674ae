package visualizer

import (
	"strings"
	"unicode"
)

// previewLimit caps the content preview in timeline points, counted in
// characters, not bytes. Content longer than the limit is cut to the limit
// and marked with an ellipsis; content of exactly the limit is shown whole.
const previewLimit = 50

// DefaultColor is used for any label missing from the palette.
const DefaultColor = "#BDC3C7"

// stageColors is the static palette handed to the renderer, keyed by display
// label.
var stageColors = map[string]string{
	"Analysis":        "#FF6B6B",
	"Planning":        "#4ECDC4",
	"Research":        "#45B7D1",
	"Synthesis":       "#FFA07A",
	"Evaluation":      "#98D8C8",
	"Problem Solving": "#F7DC6F",
	"General":         "#BDC3C7",
}

// Palette returns a copy of the label→color map for the renderer.
func Palette() map[string]string {
	out := make(map[string]string, len(stageColors))
	for k, v := range stageColors {
		out[k] = v
	}
	return out
}

// ColorFor returns the palette color for a display label, falling back to
// DefaultColor for unknown labels.
func ColorFor(label string) string {
	if c, ok := stageColors[label]; ok {
		return c
	}
	return DefaultColor
}

// DisplayLabel turns a category into its chart label: underscores become
// spaces and each word is capitalized (problem_solving → Problem Solving).
func DisplayLabel(cat Category) string {
	words := strings.Split(strings.ReplaceAll(string(cat), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLimit {
		return content
	}
	return string(runes[:previewLimit]) + "..."
}

// Aggregate turns an ordered stage series into the two chart-ready series:
// a per-stage timeline and per-label duration totals. Totals keep the order
// in which each label was first seen while scanning left to right; the
// timeline flags the first stage of each label so the renderer can suppress
// duplicate legend entries.
func Aggregate(stages []Stage) ([]TimelinePoint, []CategoryTotal) {
	timeline := make([]TimelinePoint, 0, len(stages))
	totals := make([]CategoryTotal, 0, len(stageColors))
	seen := make(map[string]int, len(stageColors))

	for _, stage := range stages {
		label := DisplayLabel(stage.Category)

		pos, ok := seen[label]
		if !ok {
			seen[label] = len(totals)
			totals = append(totals, CategoryTotal{
				Label: label,
				Color: ColorFor(label),
			})
			pos = len(totals) - 1
		}
		totals[pos].Duration += stage.Duration

		timeline = append(timeline, TimelinePoint{
			Label:        label,
			Duration:     stage.Duration,
			Preview:      preview(stage.Content),
			Color:        ColorFor(label),
			FirstOfLabel: !ok,
		})
	}
	return timeline, totals
}
