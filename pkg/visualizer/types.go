package visualizer

import "time"

// Category labels a thinking stage. The set is fixed; Classify always
// returns one of these.
type Category string

const (
	CategoryAnalysis       Category = "analysis"
	CategoryPlanning       Category = "planning"
	CategoryResearch       Category = "research"
	CategorySynthesis      Category = "synthesis"
	CategoryEvaluation     Category = "evaluation"
	CategoryProblemSolving Category = "problem_solving"
	CategoryGeneral        Category = "general"
)

// Stage is one classified sentence of the model's reasoning. Immutable once
// built; End is always Start + Duration, and stage i starts where stage i-1
// ended.
type Stage struct {
	Index    int      `json:"index"`
	Category Category `json:"category"`
	Content  string   `json:"content"`
	Start    float64  `json:"start"`
	Duration float64  `json:"duration"`
	End      float64  `json:"end"`
}

// TimelinePoint is one renderable bar of the interval view.
type TimelinePoint struct {
	Label        string  `json:"label"`
	Duration     float64 `json:"duration"`
	Preview      string  `json:"preview"`
	Color        string  `json:"color"`
	FirstOfLabel bool    `json:"first_of_label"`
}

// CategoryTotal is one slice of the distribution view. Totals are emitted in
// first-appearance order of the label, not table order.
type CategoryTotal struct {
	Label    string  `json:"label"`
	Duration float64 `json:"duration"`
	Color    string  `json:"color"`
}

// Analysis bundles everything derived from one query.
type Analysis struct {
	Query        string          `json:"query"`
	Model        string          `json:"model"`
	PromptDigest string          `json:"prompt_digest"`
	Thinking     string          `json:"thinking"`
	Answer       string          `json:"answer"`
	Stages       []Stage         `json:"stages"`
	Timeline     []TimelinePoint `json:"timeline"`
	Totals       []CategoryTotal `json:"totals"`
	Elapsed      time.Duration   `json:"-"`
}
