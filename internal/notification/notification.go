// Package notification delivers emergency traffic to hospitals over
// their configured channels and queues follow-up notices for first
// aiders.
package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
)

// Message is one outbound delivery to a hospital endpoint.
type Message struct {
	Channel models.CommunicationChannel

	// Recipient is channel-dependent: an API base URL, a webhook URL,
	// or a phone number in international format.
	Recipient string

	// AuthToken authenticates api-channel deliveries; ignored elsewhere.
	AuthToken string

	// Body is the rendered text for sms and voice channels.
	Body string

	// Payload is the structured packet for api and webhook channels.
	Payload map[string]any
}

// Result describes a successful delivery.
type Result struct {
	ProviderID   string
	ResponseCode int
}

// Sender delivers a message over one channel.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Result, error)
}

// Event is a queued notice for a first aider about their handoff.
type Event struct {
	CommunicationID uuid.UUID `json:"communication_id"`
	RecipientID     string    `json:"recipient_id"`
	Phone           string    `json:"phone,omitempty"`
	Kind            string    `json:"kind"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
}

// Publisher enqueues first-aider notification events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
