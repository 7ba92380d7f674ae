package types

// AnalyzeRequest carries one query through the portal API.
type AnalyzeRequest struct {
	Query string `json:"query"`
}

// StagePoint is one bar of the timeline view. FirstOfLabel tells the
// renderer to emit a legend entry for this bar.
type StagePoint struct {
	Label        string  `json:"label"`
	Duration     float64 `json:"duration"`
	Preview      string  `json:"preview"`
	Color        string  `json:"color"`
	FirstOfLabel bool    `json:"first_of_label"`
}

// CategorySlice is one slice of the distribution view, in first-seen order.
type CategorySlice struct {
	Label    string  `json:"label"`
	Duration float64 `json:"duration"`
	Color    string  `json:"color"`
}

// AnalyzeResponse is the flat, serializable payload handed to the renderer.
type AnalyzeResponse struct {
	Thinking    string            `json:"thinking"`
	Answer      string            `json:"answer"`
	StagesCount int               `json:"stages_count"`
	Timeline    []StagePoint      `json:"timeline"`
	Totals      []CategorySlice   `json:"totals"`
	Colors      map[string]string `json:"colors"`
	Cached      bool              `json:"cached,omitempty"`
}

// HistoryRequest pages through stored analyses.
type HistoryRequest struct {
	Limit int `form:"limit,default=20"`
}

// AnalysisSummary is one stored analysis in the history listing.
type AnalysisSummary struct {
	Id         int64  `json:"id"`
	Query      string `json:"query"`
	Answer     string `json:"answer"`
	Model      string `json:"model"`
	StageCount int    `json:"stage_count"`
	CreatedAt  string `json:"created_at"`
}

// HistoryResponse lists recent analyses, newest first.
type HistoryResponse struct {
	Analyses []AnalysisSummary `json:"analyses"`
}
