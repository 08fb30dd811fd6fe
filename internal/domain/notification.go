package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a per-user message produced by domain events
// (new course content, payment results, event reminders).
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
	ReadAt    *time.Time
}

// MarkRead transitions the notification to read. The transition is
// monotonic: marking an already-read notification is a no-op, never an
// error, and ReadAt keeps its original value. Returns true if the state
// actually changed.
func (n *Notification) MarkRead(now time.Time) bool {
	if n.Read {
		return false
	}
	n.Read = true
	t := now.UTC()
	n.ReadAt = &t
	return true
}
