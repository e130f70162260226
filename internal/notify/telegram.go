// Package notify posts operational events to a Telegram chat so hosts
// see escalations without watching the dashboard. All methods are
// no-ops when no chat is configured.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"

	"github.com/hostops-ai/hostops/internal/config"
)

const maxMessageLen = 4096

type Notifier struct {
	bot *bot.Bot
	cfg *config.Config
}

// New returns a Notifier; b may be nil when notifications are disabled.
func New(b *bot.Bot, cfg *config.Config) *Notifier {
	return &Notifier{bot: b, cfg: cfg}
}

func (n *Notifier) send(topicID int, message string) {
	if n == nil || n.bot == nil || n.cfg.NotifyChatID == 0 {
		return
	}

	if len([]rune(message)) > maxMessageLen {
		message = string([]rune(message)[:maxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.NotifyTimeout)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          n.cfg.NotifyChatID,
		Text:            message,
		ParseMode:       "Markdown",
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram notification", "error", err)
	}
}

// Escalation reports a draft flagged for manual review.
func (n *Notifier) Escalation(threadID, reason string) {
	if n == nil || n.bot == nil {
		return
	}
	msg := fmt.Sprintf("🚩 *Escalated Draft*\n\n*Thread:* `%s`\n*Reason:* %s\n*Time:* %s",
		threadID, reason, time.Now().Format("2006-01-02 15:04:05"))
	n.send(n.cfg.NotifyTopicEscalation, msg)
}

// Error reports a pipeline or ingestion failure.
func (n *Notifier) Error(err error, where string) {
	if n == nil || n.bot == nil {
		return
	}
	msg := fmt.Sprintf("❌ *Error*\n\n*Context:* %s\n*Error:* `%s`\n*Time:* %s",
		where, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	n.send(n.cfg.NotifyTopicError, msg)
}
