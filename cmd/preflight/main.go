// cmd/preflight/main.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	healthURLs := strings.TrimSpace(os.Getenv("HEALTH_URLS"))
	priceURLs := strings.TrimSpace(os.Getenv("PRICE_URLS"))
	slack := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL"))
	discord := strings.TrimSpace(os.Getenv("DISCORD_WEBHOOK_URL"))
	formURL := strings.TrimSpace(os.Getenv("FORM_URL"))
	dryRun := os.Getenv("DRY_RUN")

	if healthURLs == "" {
		warn("HEALTH_URLS empty — healthcheck will use the demo target list.")
	} else {
		ok("HEALTH_URLS=" + healthURLs)
	}
	if priceURLs == "" {
		warn("PRICE_URLS empty — pricewatch will use the demo target list.")
	} else {
		ok("PRICE_URLS=" + priceURLs)
	}

	// URL lists must parse; a typo here wastes a whole scheduled run.
	for name, list := range map[string]string{"HEALTH_URLS": healthURLs, "PRICE_URLS": priceURLs} {
		for _, raw := range strings.Split(list, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			u, err := url.Parse(raw)
			if err != nil || u.Scheme == "" || u.Host == "" {
				fail(name + " contains an invalid URL: " + raw)
			}
		}
	}

	if slack == "" && discord == "" {
		warn("no webhook configured — runs will only log their summary locally.")
	}
	if slack != "" {
		ok("SLACK_WEBHOOK_URL present")
	}
	if discord != "" {
		ok("DISCORD_WEBHOOK_URL present")
	}

	if formURL != "" {
		if os.Getenv("FORM_USERNAME") == "" || os.Getenv("FORM_PASSWORD") == "" {
			warn("FORM_URL set but credentials missing — formfill will skip itself.")
		} else {
			ok("FORM_URL and credentials present")
		}
	}

	if dryRun != "" && dryRun != "true" {
		warn(`DRY_RUN is set but not "true"; only the exact string "true" enables it.`)
	}

	ok("preflight passed")
}
