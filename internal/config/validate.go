package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive (got %v)", c.Auth.SessionTTL)
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if len(c.Payment.GatewaySecret) < 32 {
		return fmt.Errorf("payment.gateway_secret must be at least 32 characters (got %d)", len(c.Payment.GatewaySecret))
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("ratelimit: %w", err)
	}

	if c.Reconcile.DeletesPerSecond <= 0 {
		return fmt.Errorf("reconcile.deletes_per_second must be > 0 (got %v)", c.Reconcile.DeletesPerSecond)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.Window <= 0 {
		return fmt.Errorf("window must be positive (got %v)", r.Window)
	}
	if r.Max <= 0 {
		return fmt.Errorf("max must be > 0 (got %d)", r.Max)
	}
	if r.AuthWindow <= 0 {
		return fmt.Errorf("auth_window must be positive (got %v)", r.AuthWindow)
	}
	if r.AuthMax <= 0 {
		return fmt.Errorf("auth_max must be > 0 (got %d)", r.AuthMax)
	}
	return nil
}
