package fuzzytime

import (
	"strings"
	"time"
)

// periodMarker turns a single-day holiday into a range ("国庆节期间").
const periodMarker = "期间"

type holiday struct {
	name  string
	month int
	day   int
	// days is the holiday duration; anything above 1 always yields a range.
	days int
}

// 公历节日，日期固定
var solarHolidays = []holiday{
	{"元旦", 1, 1, 1},
	{"情人节", 2, 14, 1},
	{"妇女节", 3, 8, 1},
	{"植树节", 3, 12, 1},
	{"愚人节", 4, 1, 1},
	{"劳动节", 5, 1, 5},
	{"五一", 5, 1, 5},
	{"儿童节", 6, 1, 1},
	{"建党节", 7, 1, 1},
	{"建军节", 8, 1, 1},
	{"教师节", 9, 10, 1},
	{"国庆", 10, 1, 7},
	{"国庆节", 10, 1, 7},
	{"双十一", 11, 11, 1},
	{"平安夜", 12, 24, 1},
	{"圣诞", 12, 25, 1},
	{"圣诞节", 12, 25, 1},
}

// 农历节日，month/day 为农历月日，需经农历转换
var lunarHolidays = []holiday{
	{"春节", 1, 1, 7},
	{"过年", 1, 1, 7},
	{"大年初一", 1, 1, 1},
	{"除夕", 12, 30, 1},
	{"年三十", 12, 30, 1},
	{"元宵", 1, 15, 1},
	{"元宵节", 1, 15, 1},
	{"龙抬头", 2, 2, 1},
	{"端午", 5, 5, 3},
	{"端午节", 5, 5, 3},
	{"七夕", 7, 7, 1},
	{"七夕节", 7, 7, 1},
	{"中元", 7, 15, 1},
	{"中元节", 7, 15, 1},
	{"中秋", 8, 15, 1},
	{"中秋节", 8, 15, 1},
	{"重阳", 9, 9, 1},
	{"重阳节", 9, 9, 1},
	{"腊八", 12, 8, 1},
	{"腊八节", 12, 8, 1},
	{"小年", 12, 23, 1},
}

// 清明按节气推算，这里沿用闰年 4 月 4 日、平年 4 月 5 日的近似
var qingmingNames = []string{"清明", "清明节"}

// matchHoliday resolves holiday names against the current year, checking
// solar holidays first, then lunar holidays via the converter, then Qingming.
// A failed lunar conversion skips that holiday and lets the cascade continue.
func (p *Parser) matchHoliday(expr string, now time.Time) *ParsedTime {
	year := now.Year()

	for _, h := range solarHolidays {
		if strings.Contains(expr, h.name) {
			date := time.Date(year, time.Month(h.month), h.day, 0, 0, 0, 0, now.Location())
			return holidayResult(date, h.days, expr)
		}
	}

	if p.lunar != nil {
		for _, h := range lunarHolidays {
			if !strings.Contains(expr, h.name) {
				continue
			}
			solar, ok := p.lunar.LunarToSolar(year, h.month, h.day)
			if !ok {
				continue
			}
			date := time.Date(solar.Year(), solar.Month(), solar.Day(), 0, 0, 0, 0, now.Location())
			return holidayResult(date, h.days, expr)
		}
	}

	for _, name := range qingmingNames {
		if strings.Contains(expr, name) {
			day := 5
			if isLeapYear(year) {
				day = 4
			}
			date := time.Date(year, time.April, day, 0, 0, 0, 0, now.Location())
			days := 1
			if strings.Contains(expr, periodMarker) {
				days = 3
			}
			return holidayResult(date, days, expr)
		}
	}

	return nil
}

func holidayResult(start time.Time, days int, expr string) *ParsedTime {
	if days > 1 || strings.Contains(expr, periodMarker) {
		end := start.AddDate(0, 0, days-1)
		return &ParsedTime{
			Value:              []string{formatDate(start), formatDate(end)},
			IsRange:            true,
			IsDateOnly:         true,
			OriginalExpression: expr,
			Confidence:         confidenceHoliday,
		}
	}
	return &ParsedTime{
		Value:              []string{formatDate(start)},
		IsDateOnly:         true,
		OriginalExpression: expr,
		Confidence:         confidenceHoliday,
	}
}
