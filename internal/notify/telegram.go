package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spec-kit/portfolio-service/internal/config"
)

// markdownV2Reserved is the character set Telegram requires escaping in MarkdownV2 text.
const markdownV2Reserved = "_*[]()~`>#+-=|{}.!"

// EscapeMarkdownV2 prefixes every reserved MarkdownV2 character with a single backslash.
func EscapeMarkdownV2(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownV2Reserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ChannelNotifier posts one aggregate message to a chat channel.
type ChannelNotifier interface {
	Enabled() bool
	Send(ctx context.Context, subject, body string) error
}

// TelegramNotifier delivers to a single Telegram channel through the Bot API.
type TelegramNotifier struct {
	token     string
	channelID string
	apiBase   string
	client    *http.Client
}

// NewTelegramNotifier builds a notifier. When credentials are missing the
// notifier reports itself disabled and Send is never called.
func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		token:     cfg.BotToken,
		channelID: cfg.ChannelID,
		apiBase:   "https://api.telegram.org",
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether both bot token and channel id are configured.
func (t *TelegramNotifier) Enabled() bool {
	return t.token != "" && t.channelID != ""
}

type telegramRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts the subject and body as a single MarkdownV2 message.
func (t *TelegramNotifier) Send(ctx context.Context, subject, body string) error {
	text := fmt.Sprintf("*📰 %s*\n\n%s", EscapeMarkdownV2(subject), EscapeMarkdownV2(body))

	payload, err := json.Marshal(telegramRequest{
		ChatID:    t.channelID,
		Text:      text,
		ParseMode: "MarkdownV2",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}
	return nil
}
