package entities

import "time"

// ActionLog is one entry of the user-facing audit trail mirrored after each
// successful command. The engine itself does not write these; the audit
// collaborator does.
type ActionLog struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Module    string    `json:"module"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationType classifies user-facing notifications.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// Notification is a user-facing message emitted after a command.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
