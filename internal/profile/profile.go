// Package profile holds the runtime configuration for the timesense server.
package profile

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hrygo/timesense/server/timezone"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// DefaultTimezone is used when a request carries no timezone
	DefaultTimezone string
	// RateLimitRPS is the per-client request rate for the parse endpoint
	RateLimitRPS int
	// RateLimitBurst is the per-client burst for the parse endpoint
	RateLimitBurst int
	// Version is the current version of the server
	Version string
}

// IsDev reports whether the server runs in a development mode.
func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// ListenAddr returns the address the HTTP server binds to.
func (p *Profile) ListenAddr() string {
	return fmt.Sprintf("%s:%d", p.Addr, p.Port)
}

// Validate checks the profile and normalizes defaults.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}

	if p.DefaultTimezone == "" {
		p.DefaultTimezone = timezone.TimezoneAsiaShanghai
	}
	if !timezone.IsValidTimezone(p.DefaultTimezone) {
		return errors.Errorf("invalid default timezone %q", p.DefaultTimezone)
	}

	if p.RateLimitRPS <= 0 {
		p.RateLimitRPS = 10
	}
	if p.RateLimitBurst <= 0 {
		p.RateLimitBurst = 20
	}

	return nil
}
