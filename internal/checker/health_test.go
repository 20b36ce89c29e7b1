package checker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamed0406/webwatch/internal/domain"
)

type fakePage struct {
	navStatus int
	navErr    error
	text      string
	textErr   error
	fillErr   error
	clickErr  error
	shotErr   error

	fills  []string
	clicks int
	shots  int
}

func (f *fakePage) Navigate(ctx context.Context, url string) (int, error) {
	return f.navStatus, f.navErr
}

func (f *fakePage) Text(ctx context.Context, selector string) (string, error) {
	return f.text, f.textErr
}

func (f *fakePage) Fill(ctx context.Context, selector, value string) error {
	if f.fillErr != nil {
		return f.fillErr
	}
	f.fills = append(f.fills, selector+"="+value)
	return nil
}

func (f *fakePage) Click(ctx context.Context, selector string) error {
	if f.clickErr != nil {
		return f.clickErr
	}
	f.clicks++
	return nil
}

func (f *fakePage) Screenshot(ctx context.Context, path string) error {
	if f.shotErr != nil {
		return f.shotErr
	}
	f.shots++
	return nil
}

func TestClassifyElapsed_StrictBoundary(t *testing.T) {
	require.Equal(t, domain.StatusOK, classifyElapsed(4999, 5000))
	require.Equal(t, domain.StatusOK, classifyElapsed(5000, 5000)) // exactly at the limit is ok
	require.Equal(t, domain.StatusSlow, classifyElapsed(5001, 5000))
}

func TestHealthCheck_OKWithScreenshot(t *testing.T) {
	page := &fakePage{navStatus: 200}
	h := &HealthCheck{Page: page, LimitMS: 5000, ShotDir: filepath.Join(t.TempDir(), "shots")}

	res, err := h.Check(context.Background(), domain.Target{URL: "https://a.test"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, res.Status)
	require.NotNil(t, res.HTTPStatus)
	require.Equal(t, 200, *res.HTTPStatus)
	require.NotEmpty(t, res.Screenshot)
	require.Equal(t, 1, page.shots)
}

func TestHealthCheck_UnexpectedStatusIsError(t *testing.T) {
	page := &fakePage{navStatus: 503}
	h := &HealthCheck{Page: page, LimitMS: 5000}

	res, err := h.Check(context.Background(), domain.Target{URL: "https://a.test"})
	require.NoError(t, err) // the error is data on the result
	require.Equal(t, domain.StatusError, res.Status)
	require.Contains(t, res.Error, "503")
	require.Equal(t, 503, *res.HTTPStatus)
}

func TestHealthCheck_NavigateErrorStillTriesScreenshot(t *testing.T) {
	page := &fakePage{navErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}
	h := &HealthCheck{Page: page, LimitMS: 5000, ShotDir: "shots"}

	res, err := h.Check(context.Background(), domain.Target{URL: "https://nope.test"})
	require.Error(t, err)
	require.Nil(t, res.HTTPStatus)
	require.Equal(t, 1, page.shots)
}

func TestHealthCheck_ScreenshotFailureIsSilent(t *testing.T) {
	page := &fakePage{navStatus: 200, shotErr: errors.New("tab crashed")}
	h := &HealthCheck{Page: page, LimitMS: 5000, ShotDir: "shots"}

	res, err := h.Check(context.Background(), domain.Target{URL: "https://a.test"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, res.Status)
	require.Empty(t, res.Screenshot)
	require.Empty(t, res.Error)
}
