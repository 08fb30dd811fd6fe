package notification

import (
	"strings"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

const (
	maxTitleLen = 200
	maxBodyLen  = 4000

	defaultListLimit = 50
	maxListLimit     = 200
)

// CreateInput holds the parameters for delivering a notification.
type CreateInput struct {
	UserID uuid.UUID
	Title  string
	Body   string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(i.Body) > maxBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing the caller's notifications.
type ListInput struct {
	OnlyUnread bool
	Limit      int
	Offset     int
}

// Validate checks the paging bounds.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
