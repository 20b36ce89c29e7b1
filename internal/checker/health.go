package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/hamed0406/webwatch/internal/browser"
	"github.com/hamed0406/webwatch/internal/domain"
	"github.com/hamed0406/webwatch/internal/report"
)

// HealthCheck navigates to the target in a browser and records HTTP
// status plus elapsed time. A response time strictly greater than
// LimitMS classifies as slow; exactly at the limit is ok.
type HealthCheck struct {
	Page    browser.Page
	LimitMS float64
	ShotDir string // empty disables screenshots
}

func (h *HealthCheck) Check(ctx context.Context, t domain.Target) (domain.CheckResult, error) {
	res := domain.CheckResult{URL: t.URL, CheckedAt: time.Now().UTC()}

	start := time.Now()
	status, err := h.Page.Navigate(ctx, t.URL)
	res.ElapsedMS = float64(time.Since(start)) / float64(time.Millisecond)
	if err != nil {
		res.Screenshot = captureBestEffort(h.Page, h.ShotDir, t.URL)
		return res, err
	}
	res.HTTPStatus = &status

	if status < 200 || status >= 400 {
		res.Status = domain.StatusError
		res.Error = fmt.Sprintf("unexpected status %d", status)
	} else {
		res.Status = classifyElapsed(res.ElapsedMS, h.LimitMS)
	}

	res.Screenshot = captureBestEffort(h.Page, h.ShotDir, t.URL)
	return res, nil
}

// classifyElapsed is strictly greater-than: a response at exactly the
// limit is still ok.
func classifyElapsed(elapsedMS, limitMS float64) domain.Status {
	if elapsedMS > limitMS {
		return domain.StatusSlow
	}
	return domain.StatusOK
}

// captureBestEffort grabs a screenshot on its own short deadline so a
// dead check context can't block it. Capture failure is ignored: the
// shot is diagnostics, never the primary outcome.
func captureBestEffort(page browser.Page, dir, url string) string {
	if page == nil || dir == "" {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	path := report.ShotPath(dir, time.Now().UTC(), url)
	if err := page.Screenshot(ctx, path); err != nil {
		return ""
	}
	return path
}
