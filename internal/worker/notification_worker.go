package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/service"
)

const excerptRunes = 150

// NotificationWorker turns blog_published events into newsletter broadcasts.
// Broadcast failures are logged and swallowed so publishing a post can never
// fail on a notification outage.
type NotificationWorker struct {
	newsletter *service.NewsletterService
	logger     *zap.Logger
}

// NewNotificationWorker builds the worker.
func NewNotificationWorker(newsletter *service.NewsletterService, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{newsletter: newsletter, logger: logger}
}

// Register subscribes the worker to the dispatcher.
func (w *NotificationWorker) Register(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventBlogPublished, w.handleBlogPublished)
}

func (w *NotificationWorker) handleBlogPublished(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.BlogPublishedPayload)
	if !ok {
		w.logger.Warn("unexpected blog_published payload", zap.String("event_id", event.ID))
		return nil
	}

	subject := fmt.Sprintf("New post: %s", payload.Title)
	body := fmt.Sprintf("%s... Read more on the website.", excerpt(payload.Content))

	report, err := w.newsletter.Broadcast(ctx, subject, body)
	if err != nil {
		w.logger.Error("newsletter broadcast failed",
			zap.String("blog_id", payload.BlogID),
			zap.Error(err))
		return nil
	}

	w.logger.Info("newsletter broadcast finished",
		zap.String("blog_id", payload.BlogID),
		zap.Int("recipients", report.RecipientCount),
		zap.Bool("telegram_sent", report.TelegramSent),
		zap.Int("failed", len(report.FailedRecipients)))
	return nil
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptRunes {
		return content
	}
	return string(runes[:excerptRunes])
}
