package report

import (
	"context"
	"sync"

	"github.com/hamed0406/webwatch/internal/domain"
)

// Memory keeps results in append order. Used by tests and anywhere a
// run wants the records without a file.
type Memory struct {
	mu      sync.Mutex
	results []domain.CheckResult
}

func NewMemory() *Memory {
	return &Memory{results: make([]domain.CheckResult, 0, 16)}
}

func (m *Memory) Append(_ context.Context, r domain.CheckResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) Results() []domain.CheckResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.CheckResult, len(m.results))
	copy(out, m.results)
	return out
}
