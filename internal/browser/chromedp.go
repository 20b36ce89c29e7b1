package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// Session owns a headless Chrome process. Pages created from it share
// the process; the scripts here use a single page at a time.
type Session struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewSession(ctx context.Context) *Session {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.WindowSize(1280, 900),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	return &Session{allocCtx: allocCtx, allocCancel: cancel}
}

func (s *Session) Close() {
	s.allocCancel()
}

// NewPage starts the browser (on first use) and returns a Page bound
// to a fresh tab.
func (s *Session) NewPage() (*ChromePage, error) {
	pctx, cancel := chromedp.NewContext(s.allocCtx)
	p := &ChromePage{ctx: pctx, cancel: cancel}
	chromedp.ListenTarget(pctx, p.onEvent)
	if err := chromedp.Run(pctx, network.Enable()); err != nil {
		cancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}
	return p, nil
}

// ChromePage implements Page over the Chrome DevTools Protocol.
type ChromePage struct {
	ctx    context.Context
	cancel context.CancelFunc

	// status of the last main-document response; with redirects the
	// final document wins.
	status atomic.Int64
}

var _ Page = (*ChromePage)(nil)

func (p *ChromePage) Close() {
	p.cancel()
}

func (p *ChromePage) onEvent(ev interface{}) {
	if r, ok := ev.(*network.EventResponseReceived); ok && r.Type == network.ResourceTypeDocument {
		p.status.Store(r.Response.Status)
	}
}

// run executes actions on the page context while honoring the caller's
// deadline and cancellation.
func (p *ChromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	opctx, cancel := context.WithCancel(p.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	if d, ok := ctx.Deadline(); ok {
		var dcancel context.CancelFunc
		opctx, dcancel = context.WithDeadline(opctx, d)
		defer dcancel()
	}
	return chromedp.Run(opctx, actions...)
}

func (p *ChromePage) Navigate(ctx context.Context, url string) (int, error) {
	p.status.Store(0)
	if err := p.run(ctx, chromedp.Navigate(url)); err != nil {
		return 0, fmt.Errorf("navigate %s: %w", url, err)
	}
	return int(p.status.Load()), nil
}

func (p *ChromePage) Text(ctx context.Context, selector string) (string, error) {
	var out string
	if err := p.run(ctx, chromedp.Text(selector, &out, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("text %q: %w", selector, err)
	}
	return out, nil
}

func (p *ChromePage) Fill(ctx context.Context, selector, value string) error {
	if err := p.run(ctx, chromedp.SendKeys(selector, value, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("fill %q: %w", selector, err)
	}
	return nil
}

func (p *ChromePage) Click(ctx context.Context, selector string) error {
	if err := p.run(ctx, chromedp.Click(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("click %q: %w", selector, err)
	}
	return nil
}

func (p *ChromePage) Screenshot(ctx context.Context, path string) error {
	var buf []byte
	if err := p.run(ctx, chromedp.FullScreenshot(&buf, 90)); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf, 0o644)
}
