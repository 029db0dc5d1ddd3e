// Package fuzzytime converts Chinese fuzzy time expressions ("昨天",
// "国庆节期间", "下午3点30分") into normalized date/datetime strings or
// closed ranges.
//
// The package is built as an ordered cascade of independent matchers, one per
// grammatical category. Each matcher is a pure function of (expression,
// reference instant); the first match wins, and an unmatched expression falls
// back to the current date with low confidence. The reference instant is
// resolved once per Parse call and threaded through every matcher, so both
// halves of "昨天到今天" see the same "now" and concurrent calls never
// observe each other's state.
package fuzzytime

import (
	"strings"
	"time"
)

// matchFunc is the shared contract of all category matchers: a result, or
// nil for "this category does not apply".
type matchFunc func(expr string, now time.Time) *ParsedTime

// Parser parses Chinese fuzzy time expressions against a timezone.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	loc   *time.Location
	lunar LunarConverter

	// cascade is the top-level matcher order. Range goes first because range
	// syntax subsumes single-point syntax; weekday goes before relative week
	// so "上周三" resolves to a day instead of a week.
	cascade []matchFunc

	// single is the matcher order for range halves. Weekday moves to the end
	// here: a half like "周五" in "上周一到周五" rides on the shared now
	// rather than restarting the week computation.
	single []matchFunc
}

// Option configures a Parser.
type Option func(*Parser)

// WithLunarConverter injects the lunar calendar collaborator. Without one,
// lunar holidays simply never match and the cascade continues.
func WithLunarConverter(c LunarConverter) Option {
	return func(p *Parser) {
		p.lunar = c
	}
}

// New creates a parser that resolves "now" in the given timezone.
// A nil location falls back to UTC.
func New(loc *time.Location, opts ...Option) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	p := &Parser{loc: loc}
	for _, opt := range opts {
		opt(p)
	}

	p.cascade = []matchFunc{
		p.matchRange,
		p.matchHoliday,
		p.matchRelativeDay,
		p.matchWeekday,
		p.matchRelativeWeek,
		p.matchRelativeMonth,
		p.matchTimeOfDay,
		p.matchSpecificDate,
	}
	p.single = []matchFunc{
		p.matchHoliday,
		p.matchRelativeDay,
		p.matchRelativeWeek,
		p.matchRelativeMonth,
		p.matchTimeOfDay,
		p.matchSpecificDate,
		p.matchWeekday,
	}
	return p
}

// Parse parses a fuzzy time expression against the current instant in the
// parser's timezone. The instant is resolved exactly once per call.
func (p *Parser) Parse(expression string) ParsedTime {
	return p.ParseAt(expression, time.Now().In(p.loc))
}

// ParseAt parses against an explicit reference instant. Two calls with the
// same expression and instant yield identical results.
func (p *Parser) ParseAt(expression string, now time.Time) ParsedTime {
	expr := strings.TrimSpace(expression)

	for _, match := range p.cascade {
		if result := match(expr, now); result != nil {
			return *result
		}
	}

	// 全部未命中：回退到当天，置信度固定 0.3
	return ParsedTime{
		Value:              []string{formatDate(now)},
		IsDateOnly:         true,
		OriginalExpression: expr,
		Confidence:         ConfidenceFallback,
	}
}
