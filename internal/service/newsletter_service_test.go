package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

type memSubscriberRepo struct {
	subs []domain.Subscriber
}

func (r *memSubscriberRepo) Create(_ context.Context, sub *domain.Subscriber) error {
	for _, s := range r.subs {
		if s.Email == sub.Email {
			return errors.New("duplicate email")
		}
	}
	sub.ID = "sub-" + strconv.Itoa(len(r.subs)+1)
	sub.CreatedAt = time.Now()
	r.subs = append(r.subs, *sub)
	return nil
}

func (r *memSubscriberRepo) GetByEmail(_ context.Context, email string) (*domain.Subscriber, error) {
	for _, s := range r.subs {
		if s.Email == email {
			sub := s
			return &sub, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memSubscriberRepo) List(_ context.Context) ([]domain.Subscriber, error) {
	return append([]domain.Subscriber{}, r.subs...), nil
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]bool
}

func (m *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[to] {
		return errors.New("delivery refused")
	}
	m.sent = append(m.sent, to)
	return nil
}

type fakeChannel struct {
	enabled bool
	fail    bool
	calls   int
}

func (c *fakeChannel) Enabled() bool { return c.enabled }

func (c *fakeChannel) Send(_ context.Context, _, _ string) error {
	c.calls++
	if c.fail {
		return errors.New("channel unavailable")
	}
	return nil
}

func subscriberRepoWith(emails ...string) *memSubscriberRepo {
	repo := &memSubscriberRepo{}
	for _, email := range emails {
		_ = repo.Create(context.Background(), &domain.Subscriber{Email: email})
	}
	return repo
}

func TestNewsletter_Broadcast_ZeroSubscribers(t *testing.T) {
	mailer := &fakeMailer{}
	channel := &fakeChannel{enabled: true}
	svc := NewNewsletterService(&memSubscriberRepo{}, mailer, channel, zap.NewNop(), time.Second)

	report, err := svc.Broadcast(context.Background(), "Hi", "Body")
	if err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}
	if report.RecipientCount != 0 {
		t.Fatalf("expected 0 recipients, got %d", report.RecipientCount)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("mailer must not be called with zero subscribers")
	}
	if channel.calls != 0 {
		t.Fatalf("channel must not be called with zero subscribers")
	}
}

func TestNewsletter_Broadcast_PartialFailure(t *testing.T) {
	repo := subscriberRepoWith("a@example.com", "b@example.com", "c@example.com")
	mailer := &fakeMailer{failFor: map[string]bool{"b@example.com": true}}
	svc := NewNewsletterService(repo, mailer, &fakeChannel{}, zap.NewNop(), time.Second)

	report, err := svc.Broadcast(context.Background(), "Hi", "Body")
	if err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}
	if report.RecipientCount != 3 {
		t.Fatalf("expected 3 recipients, got %d", report.RecipientCount)
	}
	if len(report.FailedRecipients) != 1 || report.FailedRecipients[0] != "b@example.com" {
		t.Fatalf("expected exactly b@example.com to fail, got %v", report.FailedRecipients)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("the other two must each be attempted exactly once, got %v", mailer.sent)
	}
}

func TestNewsletter_Broadcast_FailedRecipientsKeepOrder(t *testing.T) {
	repo := subscriberRepoWith("a@example.com", "b@example.com", "c@example.com", "d@example.com")
	mailer := &fakeMailer{failFor: map[string]bool{"d@example.com": true, "a@example.com": true}}
	svc := NewNewsletterService(repo, mailer, &fakeChannel{}, zap.NewNop(), time.Second)

	report, err := svc.Broadcast(context.Background(), "Hi", "Body")
	if err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}
	want := []string{"a@example.com", "d@example.com"}
	if len(report.FailedRecipients) != len(want) {
		t.Fatalf("expected %v, got %v", want, report.FailedRecipients)
	}
	for i := range want {
		if report.FailedRecipients[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, report.FailedRecipients)
		}
	}
}

func TestNewsletter_Broadcast_ChannelDisabled(t *testing.T) {
	repo := subscriberRepoWith("a@example.com")
	channel := &fakeChannel{enabled: false}
	svc := NewNewsletterService(repo, &fakeMailer{}, channel, zap.NewNop(), time.Second)

	report, err := svc.Broadcast(context.Background(), "Hi", "Body")
	if err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}
	if report.TelegramSent {
		t.Fatalf("disabled channel must not be reported as sent")
	}
	if channel.calls != 0 {
		t.Fatalf("disabled channel must never be called")
	}
}

func TestNewsletter_Broadcast_ChannelFailureIsSwallowed(t *testing.T) {
	repo := subscriberRepoWith("a@example.com")
	channel := &fakeChannel{enabled: true, fail: true}
	svc := NewNewsletterService(repo, &fakeMailer{}, channel, zap.NewNop(), time.Second)

	report, err := svc.Broadcast(context.Background(), "Hi", "Body")
	if err != nil {
		t.Fatalf("channel failure must not escalate: %v", err)
	}
	if report.TelegramSent {
		t.Fatalf("failed channel send must not be reported as sent")
	}
}

func TestNewsletter_Broadcast_Validation(t *testing.T) {
	svc := NewNewsletterService(&memSubscriberRepo{}, &fakeMailer{}, &fakeChannel{}, zap.NewNop(), time.Second)

	for _, pair := range [][2]string{{"", "Body"}, {"Subject", ""}} {
		if _, err := svc.Broadcast(context.Background(), pair[0], pair[1]); err == nil {
			t.Fatalf("expected validation error for %q/%q", pair[0], pair[1])
		}
	}
}

func TestNewsletter_Subscribe(t *testing.T) {
	repo := &memSubscriberRepo{}
	svc := NewNewsletterService(repo, &fakeMailer{}, &fakeChannel{}, zap.NewNop(), time.Second)

	if _, err := svc.Subscribe(context.Background(), "reader@example.com"); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if _, err := svc.Subscribe(context.Background(), "reader@example.com"); err == nil {
		t.Fatalf("expected rejection of duplicate subscription")
	}
	if _, err := svc.Subscribe(context.Background(), ""); err == nil {
		t.Fatalf("expected validation error for empty email")
	}
	if len(repo.subs) != 1 {
		t.Fatalf("expected exactly one subscriber, got %d", len(repo.subs))
	}
}
