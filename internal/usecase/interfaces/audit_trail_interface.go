package interfaces

import "pure_essence_qms/internal/domain/entities"

// IAuditTrail is the external audit/notification collaborator.
//
// The engine itself never logs or notifies; the HTTP layer mirrors every
// successful command here so the UI can show an action log and toasts.
// Implementations must be safe for concurrent use.
type IAuditTrail interface {
	LogAction(actor, action, module string)
	Notify(message string, kind entities.NotificationType)
	Logs() []entities.ActionLog
	Notifications() []entities.Notification
}
