package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hamed0406/webwatch/internal/domain"
)

func TestSlack_OK(t *testing.T) {
	var got slackPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(200)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if s == nil {
		t.Fatal("expected slack client")
	}
	err := s.Send(context.Background(), Payload{
		Title:    "Health check",
		Message:  "2 checked: 2 ok, 0 slow, 0 alert, 0 error",
		Severity: domain.SeveritySuccess,
		Details:  []Detail{{Label: "report", Value: "reports/healthcheck.json"}},
	})
	if err != nil {
		t.Fatalf("send err: %v", err)
	}
	if len(got.Attachments) != 1 {
		t.Fatalf("want one attachment, got %+v", got)
	}
	a := got.Attachments[0]
	if a.Color != "#2eb67d" {
		t.Fatalf("success color wrong: %q", a.Color)
	}
	if !strings.HasPrefix(a.Title, "🟢 ") {
		t.Fatalf("title glyph missing: %q", a.Title)
	}
	if !strings.Contains(a.Text, "• report: reports/healthcheck.json") {
		t.Fatalf("details not rendered as bullets: %q", a.Text)
	}
	if !strings.HasPrefix(a.Footer, "webwatch • ") {
		t.Fatalf("footer wrong: %q", a.Footer)
	}
}

func TestSlack_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	err := s.Send(context.Background(), Payload{Title: "X", Message: "Y", Severity: domain.SeverityFailure})
	if err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestNewSlack_EmptyWebhookDisabled(t *testing.T) {
	if s := NewSlack(""); s != nil {
		t.Fatalf("expected nil for empty webhook")
	}
}
