package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"portfolioBackend/internal/config"
	"portfolioBackend/internal/domain"
	"portfolioBackend/internal/domain/dto"
)

const telegramBaseURL = "https://api.telegram.org"

var ErrNotifierNotConfigured = errors.New("telegram notifier is not configured")

type ContactService interface {
	// Send forwards a contact-form submission to the Telegram channel.
	// Single attempt, no retry; the caller surfaces failures as-is.
	Send(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	botToken  string
	chatID    string
	baseURL   string
	client    *http.Client
	sanitizer *domain.SecuritySanitizer
}

func NewContactService(cfg *config.Config) ContactService {
	return newContactService(cfg.TelegramBotToken, cfg.TelegramChatID, telegramBaseURL, &http.Client{
		Timeout: 10 * time.Second,
	})
}

func newContactService(botToken, chatID, baseURL string, client *http.Client) *contactService {
	return &contactService{
		botToken:  botToken,
		chatID:    chatID,
		baseURL:   baseURL,
		client:    client,
		sanitizer: domain.NewSecuritySanitizer(),
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (s *contactService) Send(ctx context.Context, req *dto.ContactRequest) error {
	if s.botToken == "" || s.chatID == "" {
		return ErrNotifierNotConfigured
	}

	body, err := json.Marshal(telegramMessage{
		ChatID:    s.chatID,
		Text:      s.formatMessage(req),
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Msg("telegram notification failed")
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Msg("telegram notification rejected")
		return fmt.Errorf("notification rejected with status %d", resp.StatusCode)
	}

	return nil
}

func (s *contactService) formatMessage(req *dto.ContactRequest) string {
	// Strip any markup before the text is embedded in the Telegram markdown.
	sanitized := s.sanitizer.SanitizeStrings(req.Name, req.Email, req.Phone, req.Message)
	name, email, phone, message := sanitized[0], sanitized[1], sanitized[2], sanitized[3]

	text := "📬 *New Portfolio Message*\n\n" +
		"👤 *Name:* " + name + "\n" +
		"📧 *Email:* " + email + "\n"
	if phone != "" {
		text += "📱 *Phone:* " + phone + "\n"
	}
	text += "📝 *Message:*\n" + message + "\n\n" +
		"⏰ *Time:* " + time.Now().Format("2006-01-02 15:04:05")

	return text
}
