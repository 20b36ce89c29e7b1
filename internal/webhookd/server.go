// Package webhookd is a local stand-in for the real chat webhooks:
// point SLACK_WEBHOOK_URL / DISCORD_WEBHOOK_URL at it and it logs every
// payload it receives, so notification formatting can be checked
// without posting to a real channel.
package webhookd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Server struct {
	Logger *zap.Logger
}

func NewServer(l *zap.Logger) *Server {
	return &Server{Logger: l}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/slack", s.handleHook("slack"))
	r.Post("/discord", s.handleHook("discord"))

	return r
}

func (s *Server) handleHook(backend string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read error", http.StatusBadRequest)
			return
		}
		if !json.Valid(body) {
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}
		s.Logger.Info("webhook_received",
			zap.String("backend", backend),
			zap.ByteString("payload", body),
		)
		w.WriteHeader(http.StatusNoContent)
	}
}
