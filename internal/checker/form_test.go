package checker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamed0406/webwatch/internal/domain"
)

func newFormCheck(page *fakePage, dryRun bool) *FormCheck {
	return &FormCheck{
		Page:      page,
		Username:  "user",
		Password:  "secret",
		UserSel:   `input[name="username"]`,
		PassSel:   `input[name="password"]`,
		SubmitSel: `button[type="submit"]`,
		DryRun:    dryRun,
		ShotDir:   "shots",
	}
}

func TestFormCheck_FillsAndSubmits(t *testing.T) {
	page := &fakePage{navStatus: 200}
	f := newFormCheck(page, false)

	res, err := f.Check(context.Background(), domain.Target{URL: "https://login.test"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, res.Status)
	require.Equal(t, []string{
		`input[name="username"]=user`,
		`input[name="password"]=secret`,
	}, page.fills)
	require.Equal(t, 1, page.clicks)
	require.Equal(t, 1, page.shots)
}

func TestFormCheck_DryRunSkipsSubmit(t *testing.T) {
	page := &fakePage{navStatus: 200}
	f := newFormCheck(page, true)

	res, err := f.Check(context.Background(), domain.Target{URL: "https://login.test"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, res.Status)
	require.Len(t, page.fills, 2) // read/fill steps still run
	require.Equal(t, 0, page.clicks)
}

func TestFormCheck_MissingFieldStillScreenshots(t *testing.T) {
	page := &fakePage{navStatus: 200, fillErr: errors.New(`fill "input[name=\"username\"]": not found`)}
	f := newFormCheck(page, false)

	_, err := f.Check(context.Background(), domain.Target{URL: "https://login.test"})
	require.Error(t, err)
	require.Equal(t, 0, page.clicks)
	require.Equal(t, 1, page.shots)
}
