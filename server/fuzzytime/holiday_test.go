package fuzzytime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLunarConverter returns fixed conversions for tests, keyed by
// year/month/day, and ok=false for anything unknown.
type stubLunarConverter struct {
	dates map[[3]int]time.Time
}

func (s *stubLunarConverter) LunarToSolar(year, month, day int) (time.Time, bool) {
	d, ok := s.dates[[3]int{year, month, day}]
	return d, ok
}

// unavailableLunarConverter simulates a missing conversion library.
type unavailableLunarConverter struct{}

func (unavailableLunarConverter) LunarToSolar(int, int, int) (time.Time, bool) {
	return time.Time{}, false
}

func lunarStub2024() *stubLunarConverter {
	return &stubLunarConverter{dates: map[[3]int]time.Time{
		{2024, 1, 1}:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		{2024, 12, 30}: time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC),
		{2024, 8, 15}:  time.Date(2024, 9, 17, 0, 0, 0, 0, time.UTC),
	}}
}

func TestMatchHoliday_Solar(t *testing.T) {
	p := New(time.UTC)
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		expr      string
		wantValue []string
		wantRange bool
	}{
		{"国庆节期间", []string{"2024-10-01", "2024-10-07"}, true},
		{"国庆", []string{"2024-10-01", "2024-10-07"}, true},
		{"五一", []string{"2024-05-01", "2024-05-05"}, true},
		{"圣诞节", []string{"2024-12-25"}, false},
		{"双十一", []string{"2024-11-11"}, false},
		// 单日节日带"期间"也升级为区间
		{"元旦期间", []string{"2024-01-01", "2024-01-01"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			result := p.matchHoliday(tt.expr, now)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantValue, result.Value)
			assert.Equal(t, tt.wantRange, result.IsRange)
			assert.True(t, result.IsDateOnly)
			assert.Equal(t, confidenceHoliday, result.Confidence)
		})
	}
}

func TestMatchHoliday_Lunar(t *testing.T) {
	p := New(time.UTC, WithLunarConverter(lunarStub2024()))
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	spring := p.matchHoliday("春节期间", now)
	require.NotNil(t, spring)
	assert.Equal(t, []string{"2024-02-10", "2024-02-16"}, spring.Value)
	assert.True(t, spring.IsRange)

	eve := p.matchHoliday("除夕", now)
	require.NotNil(t, eve)
	assert.Equal(t, []string{"2024-02-09"}, eve.Value)
	assert.False(t, eve.IsRange)

	midAutumn := p.matchHoliday("中秋节", now)
	require.NotNil(t, midAutumn)
	assert.Equal(t, []string{"2024-09-17"}, midAutumn.Value)
}

func TestMatchHoliday_LunarUnavailable(t *testing.T) {
	p := New(time.UTC, WithLunarConverter(unavailableLunarConverter{}))
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	// 农历转换不可用时该分支视为未命中，整体落到低置信度回退
	assert.Nil(t, p.matchHoliday("中秋节", now))

	result := p.ParseAt("中秋节", now)
	assert.Equal(t, ConfidenceFallback, result.Confidence)
	assert.Equal(t, []string{"2024-01-15"}, result.Value)
}

func TestMatchHoliday_NoConverter(t *testing.T) {
	p := New(time.UTC)
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	assert.Nil(t, p.matchHoliday("春节", now))
}

func TestMatchHoliday_Qingming(t *testing.T) {
	p := New(time.UTC)

	// 闰年 4 月 4 日
	leap := p.matchHoliday("清明", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, leap)
	assert.Equal(t, []string{"2024-04-04"}, leap.Value)

	// 平年 4 月 5 日
	common := p.matchHoliday("清明节", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, common)
	assert.Equal(t, []string{"2023-04-05"}, common.Value)

	// 期间 → 三天
	period := p.matchHoliday("清明节期间", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, period)
	assert.Equal(t, []string{"2024-04-04", "2024-04-06"}, period.Value)
	assert.True(t, period.IsRange)
}

func TestMatchHoliday_NoMatch(t *testing.T) {
	p := New(time.UTC)
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, p.matchHoliday("随便什么", now))
	assert.Nil(t, p.matchHoliday("", now))
}
