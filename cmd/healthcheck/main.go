package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

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
	logger, err := logging.NewLogger(cfg.LogDir, "healthcheck.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	os.Exit(run(cfg, logger, notify.New(logger, cfg.SlackWebhook, cfg.DiscordWebhook)))
}

func run(cfg config.Config, logger *zap.Logger, notifier *notify.Multi) int {
	ctx := context.Background()

	session := browser.NewSession(ctx)
	defer session.Close()
	page, err := session.NewPage()
	if err != nil {
		logger.Error("browser_start_error", zap.Error(err))
		notifier.Dispatch(ctx, notify.Payload{
			Title:    "Health check failed",
			Message:  "could not start browser: " + err.Error(),
			Severity: domain.SeverityFailure,
		})
		return 1
	}
	defer page.Close()

	sink := report.NewJSONReport(filepath.Join(cfg.ReportDir, "healthcheck.json"))
	check := &checker.HealthCheck{
		Page:    page,
		LimitMS: cfg.ResponseTimeLimitMS,
		ShotDir: cfg.ScreenshotDir,
	}
	runner := checker.NewRunner(logger, check, cfg.NavTimeout, sink)

	results := runner.Run(ctx, domain.TargetsFromURLs(cfg.HealthURLs))
	if err := sink.Close(); err != nil {
		logger.Warn("report_write_error", zap.Error(err))
	}

	sum := domain.Summarize(results)
	notifier.Dispatch(ctx, notify.Payload{
		Title:    "Health check",
		Message:  sum.String(),
		Severity: sum.Severity(),
		Details:  notify.ResultDetails(results),
	})

	logger.Info("run_done",
		zap.String("summary", sum.String()),
		zap.Int("exit_code", sum.ExitCode()),
	)
	return sum.ExitCode()
}
