package slacknotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	goslack "github.com/slack-go/slack"
)

// Service posts batch summaries to a Slack channel
type Service interface {
	// NotifyBatch posts one summary message for the materialized batch
	NotifyBatch(ctx context.Context, batch *model.BatchResult) error
}

// client implements Service interface
type client struct {
	api     *goslack.Client
	channel string
}

// New creates a new Slack notifier with the provided bot token
func New(botToken, channel string) (Service, error) {
	if botToken == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	return &client{
		api:     goslack.New(botToken),
		channel: channel,
	}, nil
}

// NotifyBatch posts one summary message for the batch
func (c *client) NotifyBatch(ctx context.Context, batch *model.BatchResult) error {
	if batch.Total == 0 {
		return nil
	}

	_, _, err := c.api.PostMessageContext(ctx, c.channel,
		goslack.MsgOptionText(formatBatchSummary(batch), false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post batch summary", goerr.V("channel", c.channel))
	}

	return nil
}

func formatBatchSummary(batch *model.BatchResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*Interview analysis complete*: %d issue(s) created, %d failed\n",
		batch.Successful, batch.Failed)

	for _, item := range batch.Created {
		if item.Status == types.IssueStatusCreated {
			fmt.Fprintf(&sb, "• <%s|%s>\n", item.URL, item.Title)
		} else {
			fmt.Fprintf(&sb, "• %s — failed: %s\n", item.Title, item.Error)
		}
	}

	return sb.String()
}
