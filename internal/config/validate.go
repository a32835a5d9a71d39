package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Missing store settings are not an error; the server then runs with an
// unavailable store.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverAuto, DriverPostgres, DriverPostgREST:
	default:
		return fmt.Errorf("store.driver must be one of auto, postgres, postgrest (got %q)", c.Store.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Supabase.URL != "" {
		u, err := url.Parse(c.Supabase.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("supabase.url must be an absolute URL (got %q)", c.Supabase.URL)
		}
		c.Supabase.URL = strings.TrimRight(c.Supabase.URL, "/")
	}

	if err := c.Persona.validate(); err != nil {
		return fmt.Errorf("persona: %w", err)
	}

	return nil
}

func (p *PersonaConfig) validate() error {
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	if p.SearchK <= 0 {
		return fmt.Errorf("search_k must be > 0 (got %d)", p.SearchK)
	}
	if p.ChatPerMinute <= 0 {
		return fmt.Errorf("chat_per_minute must be > 0 (got %d)", p.ChatPerMinute)
	}
	p.BaseURL = strings.TrimRight(p.BaseURL, "/")
	return nil
}
