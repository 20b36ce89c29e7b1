package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Demo targets used when the corresponding URL list is empty, so the
// scripts do something sensible out of the box.
var (
	DemoHealthURLs = []string{"https://example.com", "https://www.google.com"}
	DemoPriceURLs  = []string{"https://books.toscrape.com/catalogue/a-light-in-the-attic_1000/index.html"}
)

type Config struct {
	HealthURLs []string // HEALTH_URLS, comma-separated
	PriceURLs  []string // PRICE_URLS, comma-separated

	ResponseTimeLimitMS float64 // slow above this (strictly greater)
	PriceLimit          float64 // alert at or below this; <= 0 disables
	PriceSelector       string
	PriceUseBrowser     bool

	NavTimeout time.Duration // per-target bound on navigate/extract

	SlackWebhook   string
	DiscordWebhook string

	DryRun bool

	FormURL       string
	FormUsername  string
	FormPassword  string
	FormUserSel   string
	FormPassSel   string
	FormSubmitSel string

	ScreenshotDir string
	ReportDir     string
	LogDir        string

	WebhookdAddr string
}

// FromEnv reads configuration once at process start. Components never
// touch the environment themselves; everything flows through this
// struct.
func FromEnv() Config {
	healthURLs := splitList(os.Getenv("HEALTH_URLS"))
	if len(healthURLs) == 0 {
		healthURLs = DemoHealthURLs
	}
	priceURLs := splitList(os.Getenv("PRICE_URLS"))
	if len(priceURLs) == 0 {
		priceURLs = DemoPriceURLs
	}

	limitMS := 5000.0
	if v := os.Getenv("RESPONSE_TIME_LIMIT_MS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			limitMS = f
		}
	}

	priceLimit := 3000.0
	if v := os.Getenv("PRICE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			priceLimit = f
		}
	}

	priceSel := os.Getenv("PRICE_SELECTOR")
	if priceSel == "" {
		priceSel = ".price"
	}

	navTimeout := 30 * time.Second
	if v := os.Getenv("NAV_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			navTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	shotDir := os.Getenv("SCREENSHOT_DIR")
	if shotDir == "" {
		shotDir = "screenshots"
	}
	reportDir := os.Getenv("REPORT_DIR")
	if reportDir == "" {
		reportDir = "reports"
	}
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	webhookdAddr := os.Getenv("WEBHOOKD_ADDR")
	if webhookdAddr == "" {
		webhookdAddr = "127.0.0.1:8787"
	}

	userSel := os.Getenv("FORM_USER_SELECTOR")
	if userSel == "" {
		userSel = `input[name="username"]`
	}
	passSel := os.Getenv("FORM_PASS_SELECTOR")
	if passSel == "" {
		passSel = `input[name="password"]`
	}
	submitSel := os.Getenv("FORM_SUBMIT_SELECTOR")
	if submitSel == "" {
		submitSel = `button[type="submit"]`
	}

	return Config{
		HealthURLs:          healthURLs,
		PriceURLs:           priceURLs,
		ResponseTimeLimitMS: limitMS,
		PriceLimit:          priceLimit,
		PriceSelector:       priceSel,
		PriceUseBrowser:     os.Getenv("PRICE_USE_BROWSER") == "true",
		NavTimeout:          navTimeout,
		SlackWebhook:        strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL")),
		DiscordWebhook:      strings.TrimSpace(os.Getenv("DISCORD_WEBHOOK_URL")),
		DryRun:              os.Getenv("DRY_RUN") == "true",
		FormURL:             strings.TrimSpace(os.Getenv("FORM_URL")),
		FormUsername:        os.Getenv("FORM_USERNAME"),
		FormPassword:        os.Getenv("FORM_PASSWORD"),
		FormUserSel:         userSel,
		FormPassSel:         passSel,
		FormSubmitSel:       submitSel,
		ScreenshotDir:       shotDir,
		ReportDir:           reportDir,
		LogDir:              logDir,
		WebhookdAddr:        webhookdAddr,
	}
}

// splitList turns "a, b,,c" into ["a","b","c"].
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
