package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/hamed0406/webwatch/internal/domain"
)

// JSONReport collects results in order and writes the whole run as a
// pretty-printed array on Close, overwriting the previous run's file.
type JSONReport struct {
	path string

	mu      sync.Mutex
	results []domain.CheckResult
}

func NewJSONReport(path string) *JSONReport {
	return &JSONReport{path: path, results: make([]domain.CheckResult, 0, 16)}
}

func (j *JSONReport) Append(_ context.Context, r domain.CheckResult) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.results = append(j.results, r)
	return nil
}

func (j *JSONReport) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(j.results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(j.path, append(b, '\n'), 0o644)
}
