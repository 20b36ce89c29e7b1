package checker

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/hamed0406/webwatch/internal/browser"
	"github.com/hamed0406/webwatch/internal/domain"
)

// PriceCheck extracts a price from the target page and classifies it
// against Limit: price at or below the limit is an alert (inclusive).
// Limit <= 0 disables alerting.
//
// Browser mode drives a real page; static mode fetches the HTML with
// resty and selects with goquery, which is enough for server-rendered
// shops and much cheaper in CI.
type PriceCheck struct {
	Page     browser.Page  // browser mode when non-nil
	Client   *resty.Client // static mode
	Selector string
	Limit    float64
	ShotDir  string
}

func (p *PriceCheck) Check(ctx context.Context, t domain.Target) (domain.CheckResult, error) {
	res := domain.CheckResult{URL: t.URL, CheckedAt: time.Now().UTC()}

	sel := t.Selector
	if sel == "" {
		sel = p.Selector
	}

	start := time.Now()
	var (
		text   string
		status int
		err    error
	)
	if p.Page != nil {
		text, status, err = p.extractBrowser(ctx, t.URL, sel)
	} else {
		text, status, err = p.extractStatic(ctx, t.URL, sel)
	}
	res.ElapsedMS = float64(time.Since(start)) / float64(time.Millisecond)
	if status != 0 {
		res.HTTPStatus = &status
	}
	if p.Page != nil {
		res.Screenshot = captureBestEffort(p.Page, p.ShotDir, t.URL)
	}
	if err != nil {
		return res, err
	}

	price, err := ParsePrice(text)
	if err != nil {
		return res, fmt.Errorf("parse price from %q: %w", text, err)
	}
	res.Price = &price

	res.Status = classifyPrice(price, p.Limit)
	return res, nil
}

// classifyPrice is inclusive: a price exactly at the limit alerts.
func classifyPrice(price, limit float64) domain.Status {
	if limit > 0 && price <= limit {
		return domain.StatusAlert
	}
	return domain.StatusOK
}

func (p *PriceCheck) extractBrowser(ctx context.Context, url, sel string) (string, int, error) {
	status, err := p.Page.Navigate(ctx, url)
	if err != nil {
		return "", 0, err
	}
	if status < 200 || status >= 400 {
		return "", status, fmt.Errorf("unexpected status %d", status)
	}
	text, err := p.Page.Text(ctx, sel)
	if err != nil {
		return "", status, err
	}
	return text, status, nil
}

func (p *PriceCheck) extractStatic(ctx context.Context, url, sel string) (string, int, error) {
	resp, err := p.Client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", 0, err
	}
	status := resp.StatusCode()
	if status < 200 || status >= 400 {
		return "", status, fmt.Errorf("unexpected status %d", status)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", status, err
	}
	node := doc.Find(sel).First()
	if node.Length() == 0 {
		return "", status, fmt.Errorf("selector %q matched nothing", sel)
	}
	return strings.TrimSpace(node.Text()), status, nil
}

var priceRe = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)

// ParsePrice pulls the first number out of a price string, tolerating
// currency symbols and thousands separators ("¥1,299", "$ 12.50").
func ParsePrice(text string) (float64, error) {
	m := priceRe.FindString(text)
	if m == "" {
		return 0, fmt.Errorf("no number found")
	}
	m = strings.ReplaceAll(m, ",", "")
	return strconv.ParseFloat(m, 64)
}
