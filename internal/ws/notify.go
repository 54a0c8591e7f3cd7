package ws

import (
	"encoding/json"
	"time"

	"workmatch/internal/usecase"

	"github.com/google/uuid"
)

type scoreUpdatedEvent struct {
	Type      string              `json:"type"`
	Report    usecase.ScoreReport `json:"report"`
	Timestamp string              `json:"timestamp"`
}

// Notifier adapts the hub to the usecase layer's ScoreNotifier.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ScoreUpdated(userID uuid.UUID, report usecase.ScoreReport) {
	if n == nil || n.hub == nil {
		return
	}

	evt := scoreUpdatedEvent{
		Type:      "score_updated",
		Report:    report,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Send(userID, b)
}
