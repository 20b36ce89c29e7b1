package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/webwatch/internal/config"
	"github.com/hamed0406/webwatch/internal/logging"
	"github.com/hamed0406/webwatch/internal/webhookd"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, "webhookd.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	srv := webhookd.NewServer(logger)

	logger.Info("webhookd_listen", zap.String("addr", cfg.WebhookdAddr))
	if err := http.ListenAndServe(cfg.WebhookdAddr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
