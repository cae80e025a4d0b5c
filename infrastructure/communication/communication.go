package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Slack posts operational events (attendance scans, demo reseeds, export
// archiving failures) to the admin channels. A nil *Slack is a valid no-op
// notifier, so deployments without a bot token just skip it.
type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// ConnectSlack builds a notifier from the environment, or nil when no bot
// token is configured.
func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil
	}
	return NewSlack(token, SlackOption{
		InfoChannelID:  os.Getenv("SLACK_INFO_CHANNEL"),
		ErrorChannelID: os.Getenv("SLACK_ERROR_CHANNEL"),
	})
}

func NewSlack(token string, options SlackOption) *Slack {
	return &Slack{client: slack.New(token), options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	if channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(format string, args ...interface{}) error {
	if s == nil {
		return nil
	}
	return s.postMessage(s.options.InfoChannelID, fmt.Sprintf(format, args...))
}

func (s *Slack) Error(format string, args ...interface{}) error {
	if s == nil {
		return nil
	}
	return s.postMessage(s.options.ErrorChannelID, fmt.Sprintf(format, args...))
}
