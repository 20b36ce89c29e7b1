package notify

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/webwatch/internal/domain"
	"github.com/hamed0406/webwatch/internal/timezone"
)

// Detail is one label/value line appended to the message body.
type Detail struct {
	Label string
	Value string
}

// Payload is a transport-agnostic run summary; each backend maps it to
// its own wire shape.
type Payload struct {
	Title    string
	Message  string
	Severity domain.Severity
	Details  []Detail
}

type Notifier interface {
	Name() string
	Send(ctx context.Context, p Payload) error
}

// Severity rendering is fixed per level across all backends.
func severityGlyph(s domain.Severity) string {
	switch s {
	case domain.SeverityFailure:
		return "🔴"
	case domain.SeverityWarning:
		return "🟠"
	default:
		return "🟢"
	}
}

func severityColor(s domain.Severity) string {
	switch s {
	case domain.SeverityFailure:
		return "#e74c3c"
	case domain.SeverityWarning:
		return "#e67e22"
	default:
		return "#2eb67d"
	}
}

func (p Payload) title() string {
	return severityGlyph(p.Severity) + " " + p.Title
}

func (p Payload) body() string {
	var b strings.Builder
	b.WriteString(p.Message)
	for _, d := range p.Details {
		b.WriteString("\n• ")
		b.WriteString(d.Label)
		b.WriteString(": ")
		b.WriteString(d.Value)
	}
	return b.String()
}

func (p Payload) footer() string {
	return "webwatch • " + timezone.Now().Format(time.RFC3339)
}

// Multi fans a payload out to every configured backend concurrently.
// Delivery is best-effort by contract: individual failures are logged
// and swallowed, one slow backend never blocks another from starting,
// and Dispatch itself never fails.
type Multi struct {
	Logger   *zap.Logger
	Backends []Notifier
}

// New builds a Multi from the two optional webhook URLs; empty URLs
// leave that backend out.
func New(logger *zap.Logger, slackWebhook, discordWebhook string) *Multi {
	m := &Multi{Logger: logger}
	if s := NewSlack(slackWebhook); s != nil {
		m.Backends = append(m.Backends, s)
	}
	if d := NewDiscord(discordWebhook); d != nil {
		m.Backends = append(m.Backends, d)
	}
	return m
}

func (m *Multi) Dispatch(ctx context.Context, p Payload) {
	if len(m.Backends) == 0 {
		m.Logger.Info("notify_skipped",
			zap.String("severity", string(p.Severity)),
			zap.String("title", p.Title),
			zap.String("message", p.body()),
		)
		return
	}

	var g errgroup.Group
	for _, n := range m.Backends {
		n := n
		g.Go(func() error {
			if err := n.Send(ctx, p); err != nil {
				m.Logger.Warn("notify_error",
					zap.String("backend", n.Name()),
					zap.Error(err),
				)
				return nil // never cancel the sibling dispatch
			}
			m.Logger.Info("notify_sent", zap.String("backend", n.Name()))
			return nil
		})
	}
	_ = g.Wait()
}
