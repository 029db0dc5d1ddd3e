// Package v1 exposes the fuzzy time parser over HTTP.
//
// The API carries exactly one operation: POST /api/v1/time/parse. Transport
// concerns (binding, timezone validation, rate limiting) live here; the
// parsing semantics live in server/fuzzytime.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/timesense/internal/profile"
	"github.com/hrygo/timesense/server/fuzzytime"
	"github.com/hrygo/timesense/server/middleware"
)

// APIV1Service wires the v1 routes into an echo instance.
type APIV1Service struct {
	Profile *profile.Profile

	lunar   fuzzytime.LunarConverter
	limiter *middleware.RateLimiter
}

// NewAPIV1Service creates the v1 API service.
func NewAPIV1Service(p *profile.Profile, lunar fuzzytime.LunarConverter) *APIV1Service {
	return &APIV1Service{
		Profile: p,
		lunar:   lunar,
		limiter: middleware.NewRateLimiter(p.RateLimitRPS, p.RateLimitBurst),
	}
}

// RegisterRoutes registers the v1 routes with the given echo instance.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/time/parse", s.parseTime, s.limiter.Middleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
}
