package ws

import (
	"encoding/json"
	"log"
	"time"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/store"
)

type jobInsertedEvent struct {
	Type      string  `json:"type"`
	Job       job.Job `json:"job"`
	Timestamp string  `json:"timestamp"`
}

type notificationEvent struct {
	Type         string             `json:"type"`
	Notification store.Notification `json:"notification"`
	Timestamp    string             `json:"timestamp"`
}

// Notifier turns store events into broadcast frames.
type Notifier struct {
	hub    *Hub
	logger *log.Logger
}

func NewNotifier(hub *Hub, logger *log.Logger) *Notifier {
	return &Notifier{hub: hub, logger: logger}
}

func (n *Notifier) PublishJobInserted(j job.Job) {
	n.publish(jobInsertedEvent{
		Type:      "job_inserted",
		Job:       j,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) PublishNotification(note store.Notification) {
	n.publish(notificationEvent{
		Type:         "notification",
		Notification: note,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) publish(evt any) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		if n.logger != nil {
			n.logger.Printf("[WS] event marshal failed | error=%v", err)
		}
		return
	}
	n.hub.Broadcast(b)
}

var _ store.Publisher = (*Notifier)(nil)
