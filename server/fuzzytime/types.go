package fuzzytime

import (
	"encoding/json"
	"time"
)

// Confidence levels per match category.
// 置信度只反映表达式本身的明确程度，不是统计概率。
const (
	// ConfidenceExact is assigned to named-table and full-date matches.
	ConfidenceExact = 1.0
	// ConfidenceFallback is returned when no matcher recognizes the input.
	ConfidenceFallback = 0.3

	confidenceHoliday     = 0.95
	confidenceDayOffset   = 0.95
	confidenceWeekday     = 0.95
	confidenceNamedWeek   = 0.95
	confidenceWeekOffset  = 0.9
	confidenceNamedMonth  = 0.95
	confidenceMonthOffset = 0.85
	confidenceClock       = 0.9
)

// Standard output formats.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// ParsedTime is the result of parsing one fuzzy time expression.
// It is a value object: created per match, immutable, never persisted.
type ParsedTime struct {
	// Value holds one normalized date/datetime string for a point in time,
	// or exactly two ([start, end]) for a closed range.
	Value []string
	// IsRange reports whether Value is a [start, end] pair.
	IsRange bool
	// IsDateOnly reports whether the result carries date granularity only.
	IsDateOnly bool
	// OriginalExpression is the input text, preserved for traceability.
	OriginalExpression string
	// Confidence is in [0, 1]. Exact matches score 1.0, heuristic matches
	// less, the total fallback exactly 0.3.
	Confidence float64
}

// MarshalJSON emits value as a plain string for points and as a two-element
// array for ranges, keeping the wire shape stable for tool consumers.
func (p ParsedTime) MarshalJSON() ([]byte, error) {
	var value any
	if p.IsRange {
		value = p.Value
	} else if len(p.Value) > 0 {
		value = p.Value[0]
	} else {
		value = ""
	}
	return json.Marshal(struct {
		Value              any     `json:"value"`
		IsRange            bool    `json:"is_range"`
		IsDateOnly         bool    `json:"is_date_only"`
		OriginalExpression string  `json:"original_expression"`
		Confidence         float64 `json:"confidence"`
	}{
		Value:              value,
		IsRange:            p.IsRange,
		IsDateOnly:         p.IsDateOnly,
		OriginalExpression: p.OriginalExpression,
		Confidence:         p.Confidence,
	})
}

// Output is the envelope returned by the parse_time tool and the HTTP API.
// Exactly one of Parsed and Error is populated.
type Output struct {
	Success bool        `json:"success"`
	Parsed  *ParsedTime `json:"parsed,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// LunarConverter converts a Chinese lunar calendar date to its solar
// (Gregorian) calendar date. Implementations report ok=false when the
// conversion is unavailable for any reason; callers treat that as "no match",
// never as a fatal error.
type LunarConverter interface {
	LunarToSolar(year, month, day int) (time.Time, bool)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
