package payment

import (
	"strings"

	"github.com/communova/communova-backend/internal/domain"
)

var validCurrencies = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"RUB": {},
}

// CreateInput holds the parameters for starting a payment.
type CreateInput struct {
	Amount   int64
	Currency string
	Purpose  string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}

	if _, ok := validCurrencies[strings.ToUpper(i.Currency)]; !ok {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "unsupported"})
	}

	if strings.TrimSpace(i.Purpose) == "" {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
