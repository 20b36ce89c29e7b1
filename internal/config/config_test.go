package config

import (
	"os"
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("HEALTH_URLS", "https://a.test, https://b.test,,https://c.test")
	t.Setenv("PRICE_URLS", "https://shop.test/item")
	t.Setenv("RESPONSE_TIME_LIMIT_MS", "2500")
	t.Setenv("PRICE_LIMIT", "1500")
	t.Setenv("NAV_TIMEOUT_MS", "12000")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.test/x")
	t.Setenv("DISCORD_WEBHOOK_URL", "")
	t.Setenv("DRY_RUN", "true")

	cfg := FromEnv()

	if len(cfg.HealthURLs) != 3 || cfg.HealthURLs[1] != "https://b.test" {
		t.Fatalf("health urls wrong: %+v", cfg.HealthURLs)
	}
	if len(cfg.PriceURLs) != 1 || cfg.PriceURLs[0] != "https://shop.test/item" {
		t.Fatalf("price urls wrong: %+v", cfg.PriceURLs)
	}
	if cfg.ResponseTimeLimitMS != 2500 || cfg.PriceLimit != 1500 {
		t.Fatalf("thresholds wrong: %+v", cfg)
	}
	if cfg.NavTimeout != 12*time.Second {
		t.Fatalf("nav timeout wrong: %v", cfg.NavTimeout)
	}
	if cfg.SlackWebhook == "" || cfg.DiscordWebhook != "" {
		t.Fatalf("webhooks wrong: %+v", cfg)
	}
	if !cfg.DryRun {
		t.Fatalf("expected dry run enabled")
	}

	// ensure defaults don’t crash if missing env
	os.Unsetenv("HEALTH_URLS")
	_ = FromEnv()
}

func TestFromEnv_EmptyListsFallBackToDemo(t *testing.T) {
	t.Setenv("HEALTH_URLS", "")
	t.Setenv("PRICE_URLS", " , ")

	cfg := FromEnv()
	if len(cfg.HealthURLs) != len(DemoHealthURLs) || cfg.HealthURLs[0] != DemoHealthURLs[0] {
		t.Fatalf("want demo health urls, got %+v", cfg.HealthURLs)
	}
	if len(cfg.PriceURLs) != len(DemoPriceURLs) {
		t.Fatalf("want demo price urls, got %+v", cfg.PriceURLs)
	}
}

func TestFromEnv_InvalidNumbersUseDefaults(t *testing.T) {
	t.Setenv("RESPONSE_TIME_LIMIT_MS", "fast")
	t.Setenv("PRICE_LIMIT", "cheap")
	t.Setenv("NAV_TIMEOUT_MS", "-5")
	t.Setenv("DRY_RUN", "TRUE") // only the exact string "true" enables

	cfg := FromEnv()
	if cfg.ResponseTimeLimitMS != 5000 {
		t.Fatalf("want default limit 5000, got %v", cfg.ResponseTimeLimitMS)
	}
	if cfg.PriceLimit != 3000 {
		t.Fatalf("want default price limit 3000, got %v", cfg.PriceLimit)
	}
	if cfg.NavTimeout != 30*time.Second {
		t.Fatalf("want default nav timeout, got %v", cfg.NavTimeout)
	}
	if cfg.DryRun {
		t.Fatalf("DRY_RUN=TRUE must not enable dry run")
	}
}
