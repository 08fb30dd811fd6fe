package domain

import (
	"time"

	"github.com/google/uuid"
)

// LikeTarget is the kind of content a like attaches to.
type LikeTarget string

const (
	LikeTargetArticle LikeTarget = "ARTICLE"
	LikeTargetEvent   LikeTarget = "EVENT"
)

// Valid reports whether the target kind is known.
func (t LikeTarget) Valid() bool {
	return t == LikeTargetArticle || t == LikeTargetEvent
}

// Like is an engagement record. The intended invariant is at most one like
// per (user, target) pair; the write path does not enforce it atomically, so
// concurrent requests can leave duplicates behind. The reconciliation job
// restores the invariant after the fact, keeping the earliest record.
type Like struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TargetType LikeTarget
	TargetID   uuid.UUID
	CreatedAt  time.Time
}
