package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/timesense/server/fuzzytime"
	"github.com/hrygo/timesense/server/internal/observability"
	"github.com/hrygo/timesense/server/timezone"
)

// ParseTimeRequest is the body of POST /api/v1/time/parse.
type ParseTimeRequest struct {
	// Expression is the fuzzy time expression, e.g. "昨天", "国庆节期间".
	Expression string `json:"expression"`
	// Timezone is an optional IANA identifier; empty means the profile's
	// default (Asia/Shanghai unless configured otherwise).
	Timezone string `json:"timezone"`
}

// parseTime handles one parse request. Malformed text never fails the call:
// it degrades to the low-confidence fallback. Only a bad timezone identifier
// is reported as an error, and even that stays a 200 with success=false, per
// the tool contract.
func (s *APIV1Service) parseTime(c echo.Context) error {
	reqCtx := observability.NewRequestContext(slog.Default())

	var req ParseTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	tz := req.Timezone
	if tz == "" {
		tz = s.Profile.DefaultTimezone
	}

	loc, err := timezone.ParseTimezone(tz)
	if err != nil {
		reqCtx.Warn("parse request rejected",
			slog.String(observability.LogFieldTimezone, tz),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusOK, fuzzytime.Output{
			Success: false,
			Error:   err.Error(),
		})
	}

	parser := fuzzytime.New(loc, fuzzytime.WithLunarConverter(s.lunar))
	result := parser.Parse(req.Expression)

	reqCtx.Info("expression parsed",
		slog.String(observability.LogFieldTimezone, tz),
		slog.Int(observability.LogFieldExpressionLen, len(req.Expression)),
		slog.Float64(observability.LogFieldConfidence, result.Confidence),
		slog.Bool("is_range", result.IsRange),
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()),
	)

	return c.JSON(http.StatusOK, fuzzytime.Output{
		Success: true,
		Parsed:  &result,
	})
}
