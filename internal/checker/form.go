package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/hamed0406/webwatch/internal/browser"
	"github.com/hamed0406/webwatch/internal/domain"
)

// FormCheck runs a single login/form flow: navigate, fill credentials,
// submit, screenshot the end state. DryRun performs every step except
// the final submit click.
type FormCheck struct {
	Page      browser.Page
	Username  string
	Password  string
	UserSel   string
	PassSel   string
	SubmitSel string
	DryRun    bool
	ShotDir   string
}

func (f *FormCheck) Check(ctx context.Context, t domain.Target) (domain.CheckResult, error) {
	res := domain.CheckResult{URL: t.URL, CheckedAt: time.Now().UTC()}

	start := time.Now()
	status, err := f.Page.Navigate(ctx, t.URL)
	res.ElapsedMS = float64(time.Since(start)) / float64(time.Millisecond)
	if err != nil {
		res.Screenshot = captureBestEffort(f.Page, f.ShotDir, t.URL)
		return res, err
	}
	res.HTTPStatus = &status
	if status < 200 || status >= 400 {
		res.Screenshot = captureBestEffort(f.Page, f.ShotDir, t.URL)
		return res, fmt.Errorf("unexpected status %d", status)
	}

	if err := f.Page.Fill(ctx, f.UserSel, f.Username); err != nil {
		res.Screenshot = captureBestEffort(f.Page, f.ShotDir, t.URL)
		return res, err
	}
	if err := f.Page.Fill(ctx, f.PassSel, f.Password); err != nil {
		res.Screenshot = captureBestEffort(f.Page, f.ShotDir, t.URL)
		return res, err
	}

	if !f.DryRun {
		if err := f.Page.Click(ctx, f.SubmitSel); err != nil {
			res.Screenshot = captureBestEffort(f.Page, f.ShotDir, t.URL)
			return res, err
		}
	}

	res.Status = domain.StatusOK
	res.Screenshot = captureBestEffort(f.Page, f.ShotDir, t.URL)
	return res, nil
}
