package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMarkRead_Unread(t *testing.T) {
	n := &Notification{ID: uuid.New(), Read: false}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if !n.MarkRead(now) {
		t.Fatal("expected changed=true for unread notification")
	}
	if !n.Read {
		t.Error("expected read=true")
	}
	if n.ReadAt == nil || !n.ReadAt.Equal(now) {
		t.Errorf("read_at: got %v, want %v", n.ReadAt, now)
	}
}

func TestMarkRead_AlreadyRead(t *testing.T) {
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := &Notification{ID: uuid.New()}
	n.MarkRead(first)

	// Marking again later must not change anything.
	if n.MarkRead(first.Add(time.Hour)) {
		t.Fatal("expected no-op for already-read notification")
	}
	if !n.Read {
		t.Error("read flag must never revert")
	}
	if !n.ReadAt.Equal(first) {
		t.Errorf("read_at must keep original value: got %v, want %v", n.ReadAt, first)
	}
}
