package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/notify"
	"github.com/spec-kit/portfolio-service/internal/repository"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// BroadcastReport summarizes one broadcast. Partial failures live here, never
// in an error.
type BroadcastReport struct {
	RecipientCount   int      `json:"recipient_count"`
	TelegramSent     bool     `json:"telegram_sent"`
	FailedRecipients []string `json:"failed_recipients"`
}

// NewsletterService manages subscriptions and the multi-channel broadcast.
type NewsletterService struct {
	subscribers repository.SubscriberRepository
	mailer      notify.Mailer
	channel     notify.ChannelNotifier
	logger      *zap.Logger
	sendTimeout time.Duration
}

// NewNewsletterService builds the service.
func NewNewsletterService(
	subscribers repository.SubscriberRepository,
	mailer notify.Mailer,
	channel notify.ChannelNotifier,
	logger *zap.Logger,
	sendTimeout time.Duration,
) *NewsletterService {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &NewsletterService{
		subscribers: subscribers,
		mailer:      mailer,
		channel:     channel,
		logger:      logger,
		sendTimeout: sendTimeout,
	}
}

// Subscribe registers a new recipient email.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email is required", nil)
	}

	if _, err := s.subscribers.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("already subscribed", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	sub := &domain.Subscriber{Email: email}
	if err := s.subscribers.Create(ctx, sub); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("already subscribed", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return sub, nil
}

// Broadcast delivers subject/body to every subscriber by email, then posts a
// single aggregate message to the chat channel when it is configured. One
// recipient failing never affects the others; failures are collected into the
// report in subscriber order.
func (s *NewsletterService) Broadcast(ctx context.Context, subject, body string) (*BroadcastReport, error) {
	if subject == "" || body == "" {
		return nil, apperrors.NewValidationError("subject and message required", nil)
	}

	subs, err := s.subscribers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	report := &BroadcastReport{
		RecipientCount:   len(subs),
		FailedRecipients: []string{},
	}
	if len(subs) == 0 {
		return report, nil
	}

	report.FailedRecipients = s.emailPass(ctx, subs, subject, body)

	if s.channel != nil && s.channel.Enabled() {
		if err := s.channel.Send(ctx, subject, body); err != nil {
			s.logger.Error("telegram send failed", zap.Error(err))
		} else {
			report.TelegramSent = true
		}
	} else {
		s.logger.Warn("telegram credentials missing, skipped notification")
	}

	return report, nil
}

// emailPass fans out one send attempt per subscriber and waits for all of
// them to settle. failed[i] marks subscriber i so the returned addresses keep
// subscriber order.
func (s *NewsletterService) emailPass(ctx context.Context, subs []domain.Subscriber, subject, body string) []string {
	html := fmt.Sprintf("<p>%s</p>", body)
	failed := make([]bool, len(subs))

	var wg sync.WaitGroup
	for i := range subs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()
			if err := s.mailer.Send(sendCtx, subs[i].Email, subject, html); err != nil {
				s.logger.Error("email send failed",
					zap.String("recipient", subs[i].Email),
					zap.Error(err))
				failed[i] = true
			}
		}(i)
	}
	wg.Wait()

	addresses := []string{}
	for i, bad := range failed {
		if bad {
			addresses = append(addresses, subs[i].Email)
		}
	}
	return addresses
}
