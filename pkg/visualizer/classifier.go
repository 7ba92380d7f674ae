package visualizer

import "strings"

// stageRules is evaluated in order; the first category with any keyword
// contained in the sentence wins. Matching is plain substring search, not
// word-boundary aware ("disapproach" matches planning via "approach"); the
// rule order and substring semantics are part of the classification contract.
var stageRules = []struct {
	category Category
	keywords []string
}{
	{CategoryAnalysis, []string{"analyze", "analysis", "examining", "looking at"}},
	{CategoryPlanning, []string{"plan", "planning", "approach", "strategy"}},
	{CategoryResearch, []string{"research", "information", "data", "facts"}},
	{CategorySynthesis, []string{"combine", "synthesis", "merge", "integrate"}},
	{CategoryEvaluation, []string{"evaluate", "assessment", "judge", "compare"}},
	{CategoryProblemSolving, []string{"solve", "solution", "answer", "resolve"}},
}

// Classify maps a sentence to a thinking category. Pure, total and
// case-insensitive; sentences matching no rule fall back to general.
func Classify(sentence string) Category {
	lowered := strings.ToLower(sentence)
	for _, rule := range stageRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
