// Package lunar adapts the 6tail/lunar-go calendar library to the narrow
// LunarToSolar capability the fuzzy time parser depends on.
//
// The adapter never propagates a failure: any conversion problem (year out of
// the library's supported range, invalid lunar day, internal panic) is
// reported as ok=false and logged as a warning, so lunar holidays degrade
// gracefully instead of failing the parse.
package lunar

import (
	"log/slog"
	"time"

	"github.com/6tail/lunar-go/calendar"

	"github.com/hrygo/timesense/server/fuzzytime"
)

// Converter converts Chinese lunar calendar dates to solar (Gregorian) dates.
type Converter struct{}

var _ fuzzytime.LunarConverter = (*Converter)(nil)

// NewConverter creates a lunar calendar converter.
func NewConverter() *Converter {
	return &Converter{}
}

// LunarToSolar converts a (year, lunar month, lunar day) triple to the solar
// date it falls on in that year.
//
// 除夕特例：腊月末尾随年份在廿九/三十间变化，所以对 month=12, day>=29 取下一个
// 正月初一的前一天，而不是直接转换。
func (c *Converter) LunarToSolar(year, month, day int) (_ time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("lunar date conversion failed",
				"year", year, "month", month, "day", day, "reason", r)
			ok = false
		}
	}()

	if month == 12 && day >= 29 {
		springFestival := calendar.NewLunarFromYmd(year, 1, 1).GetSolar()
		eve := solarDate(springFestival).AddDate(0, 0, -1)
		return eve, true
	}

	solar := calendar.NewLunarFromYmd(year, month, day).GetSolar()
	return solarDate(solar), true
}

func solarDate(s *calendar.Solar) time.Time {
	return time.Date(s.GetYear(), time.Month(s.GetMonth()), s.GetDay(), 0, 0, 0, 0, time.UTC)
}
