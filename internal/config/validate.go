package config

import (
	"fmt"

	"github.com/google/uuid"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.App.Env != EnvDevelopment && c.App.Env != EnvProduction {
		return fmt.Errorf("app.env must be %q or %q (got %q)", EnvDevelopment, EnvProduction, c.App.Env)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.JWTSecret != "" && len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}

	if !a.AllowAnonymous && a.JWTSecret == "" {
		return fmt.Errorf("allow_anonymous=false requires jwt_secret")
	}

	owner, err := uuid.Parse(a.DefaultOwnerID)
	if err != nil {
		return fmt.Errorf("default_owner_id: %w", err)
	}
	if owner == uuid.Nil {
		return fmt.Errorf("default_owner_id must not be the nil UUID")
	}
	a.DefaultOwner = owner

	return nil
}
