package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ApplicationReceivedEvent struct {
	Type        string `json:"type"`
	JobID       string `json:"jobId"`
	Designation string `json:"designation"`
	Timestamp   string `json:"timestamp"`
}

// Notifier adapts the hub to the apply flow's live-notification hook.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ApplicationReceived(userID string, jobID uuid.UUID, designation string) {
	if n == nil || n.hub == nil || userID == "" {
		return
	}

	evt := ApplicationReceivedEvent{
		Type:        "application_received",
		JobID:       jobID.String(),
		Designation: designation,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendToUser(userID, b)
}
