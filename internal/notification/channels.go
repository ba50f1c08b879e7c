package notification

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
)

// ChannelSender routes a message to the concrete sender for its channel.
type ChannelSender struct {
	api     *APISender
	sms     *SMSSender
	webhook *WebhookSender
	voice   *VoiceSender
}

// NewChannelSender wires up all channel implementations from config.
func NewChannelSender(cfg *config.Config, logger *logrus.Logger) *ChannelSender {
	return &ChannelSender{
		api:     NewAPISender(cfg),
		sms:     NewSMSSender(cfg),
		webhook: NewWebhookSender(cfg),
		voice:   NewVoiceSender(logger),
	}
}

// Send dispatches the message on its channel.
func (s *ChannelSender) Send(ctx context.Context, msg Message) (*Result, error) {
	switch msg.Channel {
	case models.ChannelAPI:
		return s.api.Send(ctx, msg)
	case models.ChannelSMS:
		return s.sms.Send(ctx, msg)
	case models.ChannelWebhook:
		return s.webhook.Send(ctx, msg)
	case models.ChannelVoice:
		return s.voice.Send(ctx, msg)
	default:
		return nil, apperrors.NewValidation("channel", fmt.Sprintf("unsupported delivery channel %q", msg.Channel))
	}
}

// APISender posts the alert packet to a hospital's own emergency API.
type APISender struct {
	httpClient *http.Client
}

func NewAPISender(cfg *config.Config) *APISender {
	return &APISender{
		httpClient: &http.Client{Timeout: cfg.HospitalAPITimeout},
	}
}

func (s *APISender) Send(ctx context.Context, msg Message) (*Result, error) {
	if msg.Recipient == "" {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelAPI), fmt.Errorf("hospital has no API endpoint configured"))
	}

	body, err := json.Marshal(msg.Payload)
	if err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelAPI), fmt.Errorf("could not encode payload: %w", err))
	}

	endpoint := strings.TrimRight(msg.Recipient, "/") + "/emergency/alerts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelAPI), err)
	}
	req.Header.Set("Content-Type", "application/json")
	if msg.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+msg.AuthToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelAPI), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelAPI), fmt.Errorf("hospital API returned status %d", resp.StatusCode))
	}

	return &Result{ResponseCode: resp.StatusCode}, nil
}

// WebhookSender posts the alert packet to a hospital webhook, signed so
// the receiver can verify it came from us.
type WebhookSender struct {
	httpClient *http.Client
	secret     string
}

func NewWebhookSender(cfg *config.Config) *WebhookSender {
	return &WebhookSender{
		httpClient: &http.Client{Timeout: cfg.WebhookTimeout},
		secret:     cfg.WebhookSecret,
	}
}

func (s *WebhookSender) Send(ctx context.Context, msg Message) (*Result, error) {
	if msg.Recipient == "" {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelWebhook), fmt.Errorf("hospital has no webhook URL configured"))
	}

	body, err := json.Marshal(msg.Payload)
	if err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelWebhook), fmt.Errorf("could not encode payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, msg.Recipient, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelWebhook), err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.secret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(body, s.secret))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelWebhook), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelWebhook), fmt.Errorf("webhook returned status %d", resp.StatusCode))
	}

	return &Result{ResponseCode: resp.StatusCode}, nil
}

// smsResponse is the provider's reply envelope.
type smsResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			Number    string `json:"number"`
			Status    string `json:"status"`
			MessageID string `json:"messageId"`
			Cost      string `json:"cost"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// SMSSender delivers text messages through the Africa's Talking gateway.
type SMSSender struct {
	httpClient *http.Client
	baseURL    string
	username   string
	apiKey     string
	senderID   string
}

func NewSMSSender(cfg *config.Config) *SMSSender {
	return &SMSSender{
		httpClient: &http.Client{Timeout: cfg.HospitalAPITimeout},
		baseURL:    strings.TrimRight(cfg.SMSBaseURL, "/"),
		username:   cfg.SMSUsername,
		apiKey:     cfg.SMSAPIKey,
		senderID:   cfg.SMSSenderID,
	}
}

func (s *SMSSender) Send(ctx context.Context, msg Message) (*Result, error) {
	if msg.Recipient == "" {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelSMS), fmt.Errorf("no phone number to send to"))
	}

	form := url.Values{}
	form.Set("username", s.username)
	form.Set("to", msg.Recipient)
	form.Set("message", msg.Body)
	form.Set("from", s.senderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/messaging", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelSMS), err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelSMS), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelSMS), fmt.Errorf("SMS gateway returned status %d", resp.StatusCode))
	}

	var parsed smsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelSMS), fmt.Errorf("could not decode SMS gateway response: %w", err))
	}
	if len(parsed.SMSMessageData.Recipients) == 0 {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelSMS), fmt.Errorf("SMS gateway accepted no recipients: %s", parsed.SMSMessageData.Message))
	}

	recipient := parsed.SMSMessageData.Recipients[0]
	if recipient.Status != "Success" {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelSMS), fmt.Errorf("SMS gateway rejected recipient: %s", recipient.Status))
	}

	return &Result{ProviderID: recipient.MessageID, ResponseCode: resp.StatusCode}, nil
}

// VoiceSender places an automated call to the hospital's phone line.
// Telephony provider integration is pending; until then the call is
// recorded as accepted so the channel participates in the fallback chain.
type VoiceSender struct {
	logger *logrus.Logger
}

func NewVoiceSender(logger *logrus.Logger) *VoiceSender {
	return &VoiceSender{logger: logger}
}

func (s *VoiceSender) Send(ctx context.Context, msg Message) (*Result, error) {
	if msg.Recipient == "" {
		return nil, apperrors.NewTransientDelivery(string(models.ChannelVoice), fmt.Errorf("no phone number to call"))
	}

	s.logger.WithFields(logrus.Fields{
		"channel":   "voice",
		"recipient": msg.Recipient,
	}).Info("Voice call requested")

	return &Result{ProviderID: "voice-call"}, nil
}

// generateHMACSHA256 signs the payload with the shared webhook secret.
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
