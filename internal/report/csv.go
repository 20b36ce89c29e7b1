package report

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hamed0406/webwatch/internal/domain"
)

// csvHeader is fixed; readers key on column names, not positions.
var csvHeader = []string{"checked_at", "url", "status", "http_status", "elapsed_ms", "price", "screenshot", "error"}

// CSVSink appends one row per result to an append-only file, writing
// the header only when the file is new or empty. Each Append flushes,
// so rows already written survive a crash mid-run.
type CSVSink struct {
	f *os.File
	w *csv.Writer
}

func NewCSVSink(path string) (*CSVSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	s := &CSVSink{f: f, w: csv.NewWriter(f)}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.Size() == 0 {
		if err := s.w.Write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
		s.w.Flush()
		if err := s.w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *CSVSink) Append(_ context.Context, r domain.CheckResult) error {
	httpStatus := ""
	if r.HTTPStatus != nil {
		httpStatus = strconv.Itoa(*r.HTTPStatus)
	}
	price := ""
	if r.Price != nil {
		price = strconv.FormatFloat(*r.Price, 'f', -1, 64)
	}
	row := []string{
		r.CheckedAt.Format(time.RFC3339),
		r.URL,
		string(r.Status),
		httpStatus,
		strconv.FormatFloat(r.ElapsedMS, 'f', -1, 64),
		price,
		r.Screenshot,
		r.Error,
	}
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *CSVSink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
