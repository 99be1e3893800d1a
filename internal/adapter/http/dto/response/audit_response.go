package response

import (
	"time"

	"pure_essence_qms/internal/domain/entities"
)

type ActionLogResponse struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Module    string    `json:"module"`
	Timestamp time.Time `json:"timestamp"`
}

func FromActionLogs(logs []entities.ActionLog) []ActionLogResponse {
	out := make([]ActionLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ActionLogResponse{
			ID:        l.ID,
			Actor:     l.Actor,
			Action:    l.Action,
			Module:    l.Module,
			Timestamp: l.Timestamp,
		})
	}
	return out
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func FromNotifications(notifications []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Type:      string(n.Type),
			Timestamp: n.Timestamp,
			Read:      n.Read,
		})
	}
	return out
}
