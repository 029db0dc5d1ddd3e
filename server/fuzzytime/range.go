package fuzzytime

import (
	"regexp"
	"strings"
	"time"
)

// 区间分隔写法，按序尝试；"从...到" 变体剥掉前导 "从"
var rangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.+?)到(.+)$`),
	regexp.MustCompile(`^(.+?)至(.+)$`),
	regexp.MustCompile(`^(.+?)-(.+)$`),
	regexp.MustCompile(`^(.+?)~(.+)$`),
	regexp.MustCompile(`^从(.+?)到(.+)$`),
}

// endpoint is one half of a range, reduced to a point.
type endpoint struct {
	value      string
	dateOnly   bool
	confidence float64
}

// matchRange splits the expression on a range separator, parses both halves
// independently against the same reference instant and merges them. A half
// that fails to parse fails the whole pattern, letting the next separator
// (and ultimately the rest of the cascade) have a try.
func (p *Parser) matchRange(expr string, now time.Time) *ParsedTime {
	for _, re := range rangePatterns {
		m := re.FindStringSubmatch(expr)
		if m == nil {
			continue
		}

		start, ok := p.parseEndpoint(strings.TrimSpace(m[1]), now)
		if !ok {
			continue
		}
		end, ok := p.parseEndpoint(strings.TrimSpace(m[2]), now)
		if !ok {
			continue
		}

		return &ParsedTime{
			Value:              []string{start.value, end.value},
			IsRange:            true,
			IsDateOnly:         start.dateOnly && end.dateOnly,
			OriginalExpression: expr,
			// 短板原则：区间的可信度取决于最弱的一端
			Confidence: min(start.confidence, end.confidence),
		}
	}

	return nil
}

// parseEndpoint parses one half-expression via the single-point matcher
// order. A half that itself resolves to a range contributes its first
// element only.
func (p *Parser) parseEndpoint(expr string, now time.Time) (endpoint, bool) {
	for _, match := range p.single {
		result := match(expr, now)
		if result == nil {
			continue
		}
		return endpoint{
			value:      result.Value[0],
			dateOnly:   result.IsDateOnly,
			confidence: result.Confidence,
		}, true
	}
	return endpoint{}, false
}
