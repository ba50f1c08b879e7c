package notification

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		HospitalAPITimeout: 2 * time.Second,
		WebhookTimeout:     2 * time.Second,
		WebhookSecret:      "test-secret",
		SMSUsername:        "sandbox",
		SMSAPIKey:          "sms-key",
		SMSSenderID:        "HAVEN",
	}
}

func TestAPISender_Send(t *testing.T) {
	var gotAuth string
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewAPISender(testConfig())
	result, err := sender.Send(context.Background(), Message{
		Channel:   models.ChannelAPI,
		Recipient: server.URL,
		AuthToken: "hospital-token",
		Payload:   map[string]any{"alert_id": "EMG202508241200ABC123"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.ResponseCode)
	assert.Equal(t, "Bearer hospital-token", gotAuth)
	assert.Equal(t, "/emergency/alerts", gotPath)
}

func TestAPISender_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sender := NewAPISender(testConfig())
	_, err := sender.Send(context.Background(), Message{
		Channel:   models.ChannelAPI,
		Recipient: server.URL,
		Payload:   map[string]any{},
	})

	assert.True(t, apperrors.IsTransientDelivery(err))
}

func TestAPISender_Send_NoEndpoint(t *testing.T) {
	sender := NewAPISender(testConfig())

	_, err := sender.Send(context.Background(), Message{Channel: models.ChannelAPI})

	assert.True(t, apperrors.IsTransientDelivery(err))
}

func TestWebhookSender_Send_SignsPayload(t *testing.T) {
	var gotSignature string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewWebhookSender(testConfig())
	_, err := sender.Send(context.Background(), Message{
		Channel:   models.ChannelWebhook,
		Recipient: server.URL,
		Payload:   map[string]any{"priority": "critical"},
	})

	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestWebhookSender_Send_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := NewWebhookSender(testConfig())
	_, err := sender.Send(context.Background(), Message{
		Channel:   models.ChannelWebhook,
		Recipient: server.URL,
		Payload:   map[string]any{},
	})

	assert.True(t, apperrors.IsTransientDelivery(err))
}

func TestSMSSender_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "sandbox", r.PostForm.Get("username"))
		assert.Equal(t, "+254700000001", r.PostForm.Get("to"))
		assert.Equal(t, "HAVEN", r.PostForm.Get("from"))
		assert.NotEmpty(t, r.PostForm.Get("message"))
		assert.Equal(t, "sms-key", r.Header.Get("apiKey"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"SMSMessageData": {
				"Message": "Sent to 1/1",
				"Recipients": [{"number": "+254700000001", "status": "Success", "messageId": "ATXid_1", "cost": "KES 0.80"}]
			}
		}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.SMSBaseURL = server.URL

	sender := NewSMSSender(cfg)
	result, err := sender.Send(context.Background(), Message{
		Channel:   models.ChannelSMS,
		Recipient: "+254700000001",
		Body:      "EMERGENCY ALERT - EMG202508241200ABC123",
	})

	require.NoError(t, err)
	assert.Equal(t, "ATXid_1", result.ProviderID)
}

func TestSMSSender_Send_RecipientRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"SMSMessageData": {
				"Message": "Sent to 0/1",
				"Recipients": [{"number": "+254700000001", "status": "InvalidPhoneNumber"}]
			}
		}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.SMSBaseURL = server.URL

	sender := NewSMSSender(cfg)
	_, err := sender.Send(context.Background(), Message{
		Channel:   models.ChannelSMS,
		Recipient: "+254700000001",
		Body:      "test",
	})

	assert.True(t, apperrors.IsTransientDelivery(err))
	assert.ErrorContains(t, err, "InvalidPhoneNumber")
}

func TestVoiceSender_Send(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	sender := NewVoiceSender(log)

	result, err := sender.Send(context.Background(), Message{
		Channel:   models.ChannelVoice,
		Recipient: "+254700000002",
	})
	require.NoError(t, err)
	assert.Equal(t, "voice-call", result.ProviderID)

	_, err = sender.Send(context.Background(), Message{Channel: models.ChannelVoice})
	assert.True(t, apperrors.IsTransientDelivery(err))
}

func TestChannelSender_UnsupportedChannel(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	sender := NewChannelSender(testConfig(), log)

	_, err := sender.Send(context.Background(), Message{Channel: models.ChannelPush})

	assert.True(t, apperrors.IsValidation(err))
}
