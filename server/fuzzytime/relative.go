package fuzzytime

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// 相对日期命名表，按表序匹配
var namedDays = []struct {
	name   string
	offset int
}{
	{"今天", 0},
	{"今日", 0},
	{"昨天", -1},
	{"昨日", -1},
	{"前天", -2},
	{"前日", -2},
	{"大前天", -3},
	{"明天", 1},
	{"明日", 1},
	{"后天", 2},
	{"后日", 2},
	{"大后天", 3},
}

// N天前 / N天后 / N日前 / N日后
var dayOffsetPatterns = []struct {
	re        *regexp.Regexp
	direction int
}{
	{regexp.MustCompile(`^(\d+|[一二三四五六七八九十]+)天前`), -1},
	{regexp.MustCompile(`^(\d+|[一二三四五六七八九十]+)天后`), 1},
	{regexp.MustCompile(`^(\d+|[一二三四五六七八九十]+)日前`), -1},
	{regexp.MustCompile(`^(\d+|[一二三四五六七八九十]+)日后`), 1},
}

// matchRelativeDay resolves named offsets like "昨天" (confidence 1.0) and
// numeral patterns like "三天前" (confidence 0.95). Always a date-only point.
func (p *Parser) matchRelativeDay(expr string, now time.Time) *ParsedTime {
	for _, d := range namedDays {
		if expr == d.name || strings.HasPrefix(expr, d.name) {
			target := now.AddDate(0, 0, d.offset)
			return &ParsedTime{
				Value:              []string{formatDate(target)},
				IsDateOnly:         true,
				OriginalExpression: expr,
				Confidence:         ConfidenceExact,
			}
		}
	}

	for _, pat := range dayOffsetPatterns {
		m := pat.re.FindStringSubmatch(expr)
		if m == nil {
			continue
		}
		num := int(numeralValue(m[1]))
		target := now.AddDate(0, 0, num*pat.direction)
		return &ParsedTime{
			Value:              []string{formatDate(target)},
			IsDateOnly:         true,
			OriginalExpression: expr,
			Confidence:         confidenceDayOffset,
		}
	}

	return nil
}

// 相对周命名表
var namedWeeks = []struct {
	name   string
	offset int
}{
	{"本周", 0},
	{"这周", 0},
	{"上周", -1},
	{"上一周", -1},
	{"上上周", -2},
	{"下周", 1},
	{"下一周", 1},
	{"下下周", 2},
}

// N周前/后、N(个)星期前/后，"两" 只在周表达里常见
var weekOffsetPatterns = []struct {
	re        *regexp.Regexp
	direction int
}{
	{regexp.MustCompile(`^(\d+|[一二两三四五六七八九十]+)周前`), -1},
	{regexp.MustCompile(`^(\d+|[一二两三四五六七八九十]+)周后`), 1},
	{regexp.MustCompile(`^(\d+|[一二两三四五六七八九十]+)个?星期前`), -1},
	{regexp.MustCompile(`^(\d+|[一二两三四五六七八九十]+)个?星期后`), 1},
}

// matchRelativeWeek resolves week expressions to the [Monday, Sunday] range
// of the target week. Named table 0.95, numeral pattern 0.9.
func (p *Parser) matchRelativeWeek(expr string, now time.Time) *ParsedTime {
	for _, w := range namedWeeks {
		if expr == w.name || strings.HasPrefix(expr, w.name) {
			return weekResult(now, w.offset, expr, confidenceNamedWeek)
		}
	}

	for _, pat := range weekOffsetPatterns {
		m := pat.re.FindStringSubmatch(expr)
		if m == nil {
			continue
		}
		num := int(numeralValue(m[1]))
		return weekResult(now, num*pat.direction, expr, confidenceWeekOffset)
	}

	return nil
}

func weekResult(now time.Time, offsetWeeks int, expr string, confidence float64) *ParsedTime {
	start := mondayOf(now).AddDate(0, 0, offsetWeeks*7)
	end := start.AddDate(0, 0, 6)
	return &ParsedTime{
		Value:              []string{formatDate(start), formatDate(end)},
		IsRange:            true,
		IsDateOnly:         true,
		OriginalExpression: expr,
		Confidence:         confidence,
	}
}

// mondayOf returns the Monday of t's ISO week at midnight.
func mondayOf(t time.Time) time.Time {
	// Monday-start weekday index: 一..日 → 0..6
	wd := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-wd, 0, 0, 0, 0, t.Location())
}

// 相对月命名表
var namedMonths = []struct {
	name   string
	offset int
}{
	{"本月", 0},
	{"这个月", 0},
	{"上个月", -1},
	{"上月", -1},
	{"下个月", 1},
	{"下月", 1},
}

// N(个)月前/后
var monthOffsetPatterns = []struct {
	re        *regexp.Regexp
	direction int
}{
	{regexp.MustCompile(`^(\d+|[一二三四五六七八九十]+)个?月前`), -1},
	{regexp.MustCompile(`^(\d+|[一二三四五六七八九十]+)个?月后`), 1},
}

// matchRelativeMonth resolves month expressions to the [first day, last day]
// range of the target month, wrapping year boundaries and resolving the
// correct month length (leap-year aware). Named table 0.95, numeral 0.85.
func (p *Parser) matchRelativeMonth(expr string, now time.Time) *ParsedTime {
	for _, m := range namedMonths {
		if expr == m.name || strings.HasPrefix(expr, m.name) {
			return monthResult(now, m.offset, expr, confidenceNamedMonth)
		}
	}

	for _, pat := range monthOffsetPatterns {
		m := pat.re.FindStringSubmatch(expr)
		if m == nil {
			continue
		}
		num := int(numeralValue(m[1]))
		return monthResult(now, num*pat.direction, expr, confidenceMonthOffset)
	}

	return nil
}

func monthResult(now time.Time, offsetMonths int, expr string, confidence float64) *ParsedTime {
	year := now.Year()
	month := int(now.Month()) + offsetMonths

	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}

	// day 0 of the next month is the last day of this month
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, now.Location()).Day()

	return &ParsedTime{
		Value: []string{
			fmt.Sprintf("%d-%02d-01", year, month),
			fmt.Sprintf("%d-%02d-%02d", year, month, lastDay),
		},
		IsRange:            true,
		IsDateOnly:         true,
		OriginalExpression: expr,
		Confidence:         confidence,
	}
}
