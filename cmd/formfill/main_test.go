package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hamed0406/webwatch/internal/config"
	"github.com/hamed0406/webwatch/internal/domain"
	"github.com/hamed0406/webwatch/internal/notify"
)

// capturingBackend records every payload it is asked to deliver.
type capturingBackend struct {
	payloads []notify.Payload
}

func (c *capturingBackend) Name() string { return "capturing" }

func (c *capturingBackend) Send(_ context.Context, p notify.Payload) error {
	c.payloads = append(c.payloads, p)
	return nil
}

func TestRun_SkipsWithWarningWhenFormConfigMissing(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
	}{
		{"no url", config.Config{FormUsername: "user", FormPassword: "secret"}},
		{"no username", config.Config{FormURL: "https://login.test", FormPassword: "secret"}},
		{"no password", config.Config{FormURL: "https://login.test", FormUsername: "user"}},
		{"nothing set", config.Config{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &capturingBackend{}
			notifier := &notify.Multi{Logger: zap.NewNop(), Backends: []notify.Notifier{backend}}

			code := run(tc.cfg, zap.NewNop(), notifier)

			require.Equal(t, 0, code) // skipped, not failed
			require.Len(t, backend.payloads, 1)
			require.Equal(t, domain.SeverityWarning, backend.payloads[0].Severity)
			require.Equal(t, "Form fill skipped", backend.payloads[0].Title)
		})
	}
}
