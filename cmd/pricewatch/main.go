package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/hamed0406/webwatch/internal/browser"
	"github.com/hamed0406/webwatch/internal/checker"
	"github.com/hamed0406/webwatch/internal/config"
	"github.com/hamed0406/webwatch/internal/domain"
	"github.com/hamed0406/webwatch/internal/logging"
	"github.com/hamed0406/webwatch/internal/notify"
	"github.com/hamed0406/webwatch/internal/report"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, "pricewatch.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	os.Exit(run(cfg, logger, notify.New(logger, cfg.SlackWebhook, cfg.DiscordWebhook)))
}

func run(cfg config.Config, logger *zap.Logger, notifier *notify.Multi) int {
	ctx := context.Background()

	check := &checker.PriceCheck{
		Selector: cfg.PriceSelector,
		Limit:    cfg.PriceLimit,
		ShotDir:  cfg.ScreenshotDir,
	}
	if cfg.PriceUseBrowser {
		session := browser.NewSession(ctx)
		defer session.Close()
		page, err := session.NewPage()
		if err != nil {
			logger.Error("browser_start_error", zap.Error(err))
			notifier.Dispatch(ctx, notify.Payload{
				Title:    "Price watch failed",
				Message:  "could not start browser: " + err.Error(),
				Severity: domain.SeverityFailure,
			})
			return 1
		}
		defer page.Close()
		check.Page = page
	} else {
		check.Client = resty.New().SetTimeout(cfg.NavTimeout)
	}

	sink, err := report.NewCSVSink(filepath.Join(cfg.ReportDir, "prices.csv"))
	if err != nil {
		logger.Error("csv_open_error", zap.Error(err))
		notifier.Dispatch(ctx, notify.Payload{
			Title:    "Price watch failed",
			Message:  "could not open price log: " + err.Error(),
			Severity: domain.SeverityFailure,
		})
		return 1
	}

	runner := checker.NewRunner(logger, check, cfg.NavTimeout, sink)
	results := runner.Run(ctx, domain.TargetsFromURLs(cfg.PriceURLs))
	if err := sink.Close(); err != nil {
		logger.Warn("csv_close_error", zap.Error(err))
	}

	sum := domain.Summarize(results)
	notifier.Dispatch(ctx, notify.Payload{
		Title:    "Price watch",
		Message:  sum.String(),
		Severity: sum.Severity(),
		Details:  priceDetails(results),
	})

	logger.Info("run_done",
		zap.String("summary", sum.String()),
		zap.Int("exit_code", sum.ExitCode()),
	)
	return sum.ExitCode()
}

// priceDetails lists every extracted price, not only problems; price
// history is the point of this script.
func priceDetails(results []domain.CheckResult) []notify.Detail {
	out := make([]notify.Detail, 0, len(results))
	for _, r := range results {
		switch {
		case r.Error != "":
			out = append(out, notify.Detail{Label: r.URL, Value: r.Error})
		case r.Price != nil:
			v := strconv.FormatFloat(*r.Price, 'f', -1, 64)
			if r.Status == domain.StatusAlert {
				v += " (at or below limit)"
			}
			out = append(out, notify.Detail{Label: r.URL, Value: v})
		}
	}
	return out
}
