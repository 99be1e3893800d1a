package audit

import (
	"log"
	"sync"
	"time"

	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Trail is the in-process audit collaborator: it mirrors successful
// commands as action-log entries and user-facing notifications.
//
// The engine core never writes here; the HTTP layer does, after a command
// succeeds. Entries are kept newest-first.
type Trail struct {
	mu            sync.Mutex
	logs          []entities.ActionLog
	notifications []entities.Notification

	now   func() time.Time
	newID func() string
}

var _ interfaces.IAuditTrail = (*Trail)(nil)

func NewTrail() *Trail {
	return &Trail{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (t *Trail) LogAction(actor, action, module string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := entities.ActionLog{
		ID:        t.newID(),
		Actor:     actor,
		Action:    action,
		Module:    module,
		Timestamp: t.now(),
	}
	t.logs = append([]entities.ActionLog{entry}, t.logs...)
	log.Printf("[audit] actor=%q action=%q module=%q", actor, action, module)
}

func (t *Trail) Notify(message string, kind entities.NotificationType) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := entities.Notification{
		ID:        t.newID(),
		Message:   message,
		Type:      kind,
		Timestamp: t.now(),
	}
	t.notifications = append([]entities.Notification{n}, t.notifications...)
}

func (t *Trail) Logs() []entities.ActionLog {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]entities.ActionLog(nil), t.logs...)
}

func (t *Trail) Notifications() []entities.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]entities.Notification(nil), t.notifications...)
}
