package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AnalysisRecord captures one end-to-end analysis for offline inspection.
type AnalysisRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Query        string    `json:"query"`
	Model        string    `json:"model,omitempty"`
	PromptDigest string    `json:"prompt_digest,omitempty"`
	Thinking     string    `json:"thinking,omitempty"`
	Answer       string    `json:"answer,omitempty"`
	StageCount   int       `json:"stage_count"`
	ElapsedMS    int64     `json:"elapsed_ms,omitempty"`
}

// Writer persists analysis records to a directory as JSON files.
type Writer struct {
	dir   string
	nowFn func() time.Time

	mu  sync.Mutex
	seq int
}

// NewWriter constructs a journal writer rooted at dir.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "journal"
	}
	_ = os.MkdirAll(dir, 0o755)
	return &Writer{dir: dir, nowFn: time.Now}
}

// WriteAnalysis writes a record to a timestamped JSON file and returns its path.
func (w *Writer) WriteAnalysis(rec *AnalysisRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("journal: nil record")
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = w.nowFn()
	}

	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.mu.Unlock()

	name := fmt.Sprintf("analysis_%s_%05d.json", rec.Timestamp.UTC().Format("20060102_150405"), seq)
	path := filepath.Join(w.dir, name)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
