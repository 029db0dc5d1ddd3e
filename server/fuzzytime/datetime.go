package fuzzytime

import (
	"regexp"
	"strconv"
	"time"
)

// (上|上上|下|下下|这)?周X / 星期X
var weekdayPattern = regexp.MustCompile(`^(上上?|下下?|这)?(?:周|星期)([一二三四五六日天])`)

// 星期字符 → 周一起始下标
var weekdayIndex = map[string]int{
	"一": 0,
	"二": 1,
	"三": 2,
	"四": 3,
	"五": 4,
	"六": 5,
	"日": 6,
	"天": 6,
}

var weekdayPrefixOffset = map[string]int{
	"这":  0,
	"上":  -1,
	"上上": -2,
	"下":  1,
	"下下": 2,
}

// matchWeekday resolves "(上|下)?周X" to a single date. In the top-level
// cascade this must run before matchRelativeWeek, otherwise "上周三" would be
// captured as "上周" with a dangling "三".
func (p *Parser) matchWeekday(expr string, now time.Time) *ParsedTime {
	m := weekdayPattern.FindStringSubmatch(expr)
	if m == nil {
		return nil
	}

	prefix := m[1]
	if prefix == "" {
		prefix = "这"
	}
	weekday := weekdayIndex[m[2]]
	weekOffset := weekdayPrefixOffset[prefix]

	current := (int(now.Weekday()) + 6) % 7
	daysDiff := weekday - current + weekOffset*7
	target := now.AddDate(0, 0, daysDiff)

	return &ParsedTime{
		Value:              []string{formatDate(target)},
		IsDateOnly:         true,
		OriginalExpression: expr,
		Confidence:         confidenceWeekday,
	}
}

// (时段)?X点(Y分?)?，在整个表达式内查找而非锚定开头
var clockPattern = regexp.MustCompile(`(凌晨|早上|上午|中午|下午|晚上|深夜)?(\d+|[一二三四五六七八九十]+)点(?:(\d+|[一二三四五六七八九十]+)分?)?`)

// matchTimeOfDay resolves clock expressions like "下午3点30分" to a datetime
// on the current date. 下午/晚上 shift the hour into the afternoon, 凌晨
// maps hour 12 back to 0. Confidence 0.9, never date-only.
func (p *Parser) matchTimeOfDay(expr string, now time.Time) *ParsedTime {
	m := clockPattern.FindStringSubmatch(expr)
	if m == nil {
		return nil
	}

	period := m[1]
	hour := int(numeralValue(m[2]))
	minute := 0
	if m[3] != "" {
		minute = int(numeralValue(m[3]))
	}

	switch period {
	case "下午", "晚上":
		if hour < 12 {
			hour += 12
		}
	case "凌晨":
		if hour == 12 {
			hour = 0
		}
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	return &ParsedTime{
		Value:              []string{formatDateTime(target)},
		OriginalExpression: expr,
		Confidence:         confidenceClock,
	}
}

// 具体日期三种写法，按优先级依次尝试
var specificDatePatterns = []struct {
	re      *regexp.Regexp
	extract func(m []string, now time.Time) (year, month, day int)
}{
	{
		// 2024年1月1日
		regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})[日号]?`),
		func(m []string, _ time.Time) (int, int, int) {
			return atoi(m[1]), atoi(m[2]), atoi(m[3])
		},
	},
	{
		// 1月1日，年份取当前年
		regexp.MustCompile(`^(\d{1,2})月(\d{1,2})[日号]?`),
		func(m []string, now time.Time) (int, int, int) {
			return now.Year(), atoi(m[1]), atoi(m[2])
		},
	},
	{
		// 15号，年月取当前年月
		regexp.MustCompile(`^(\d{1,2})[日号]`),
		func(m []string, now time.Time) (int, int, int) {
			return now.Year(), int(now.Month()), atoi(m[1])
		},
	},
}

// matchSpecificDate resolves explicit dates with confidence 1.0. A calendar-
// invalid combination (2月30日, 13月…) skips that pattern variant and falls
// through to the next one, never failing the call.
func (p *Parser) matchSpecificDate(expr string, now time.Time) *ParsedTime {
	for _, pat := range specificDatePatterns {
		m := pat.re.FindStringSubmatch(expr)
		if m == nil {
			continue
		}

		year, month, day := pat.extract(m, now)
		target := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		// time.Date normalizes overflow, so a round-trip mismatch means the
		// components were not a real calendar date
		if target.Year() != year || int(target.Month()) != month || target.Day() != day {
			continue
		}

		return &ParsedTime{
			Value:              []string{formatDate(target)},
			IsDateOnly:         true,
			OriginalExpression: expr,
			Confidence:         ConfidenceExact,
		}
	}

	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
