package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Discord struct {
	Webhook string
	Client  *resty.Client
}

func NewDiscord(webhook string) *Discord {
	if webhook == "" {
		return nil
	}
	return &Discord{
		Webhook: webhook,
		Client:  resty.New().SetTimeout(10 * time.Second),
	}
}

func (d *Discord) Name() string { return "discord" }

type discordFooter struct {
	Text string `json:"text"`
}

type discordEmbed struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Color       int64         `json:"color"`
	Footer      discordFooter `json:"footer"`
}

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

// Discord wants the embed color as a decimal RGB integer.
func discordColor(hex string) int64 {
	v, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 64)
	if err != nil {
		return 0
	}
	return v
}

func (d *Discord) Send(ctx context.Context, p Payload) error {
	if d == nil || d.Webhook == "" {
		return errors.New("discord disabled")
	}
	body := discordPayload{Embeds: []discordEmbed{{
		Title:       p.title(),
		Description: p.body(),
		Color:       discordColor(severityColor(p.Severity)),
		Footer:      discordFooter{Text: p.footer()},
	}}}

	resp, err := d.Client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(d.Webhook)
	if err != nil {
		return err
	}
	if resp.StatusCode()/100 != 2 {
		return fmt.Errorf("discord webhook status %d", resp.StatusCode())
	}
	return nil
}
