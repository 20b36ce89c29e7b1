package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type Slack struct {
	Webhook string
	Client  *resty.Client
}

func NewSlack(webhook string) *Slack {
	if webhook == "" {
		return nil
	}
	return &Slack{
		Webhook: webhook,
		Client:  resty.New().SetTimeout(10 * time.Second),
	}
}

func (s *Slack) Name() string { return "slack" }

type slackAttachment struct {
	Color  string `json:"color"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Footer string `json:"footer"`
}

type slackPayload struct {
	Attachments []slackAttachment `json:"attachments"`
}

func (s *Slack) Send(ctx context.Context, p Payload) error {
	if s == nil || s.Webhook == "" {
		return errors.New("slack disabled")
	}
	body := slackPayload{Attachments: []slackAttachment{{
		Color:  severityColor(p.Severity),
		Title:  p.title(),
		Text:   p.body(),
		Footer: p.footer(),
	}}}

	resp, err := s.Client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(s.Webhook)
	if err != nil {
		return err
	}
	if resp.StatusCode()/100 != 2 {
		return fmt.Errorf("slack webhook status %d", resp.StatusCode())
	}
	return nil
}
