package fuzzytime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAt_CascadePrecedence(t *testing.T) {
	p := New(time.UTC)

	// "上周三" 必须被星期匹配器截获为单日，而不是被相对周吞掉
	result := p.ParseAt("上周三", monday)
	assert.Equal(t, []string{"2024-01-10"}, result.Value)
	assert.False(t, result.IsRange)

	// 单独的 "上周" 仍是整周区间
	week := p.ParseAt("上周", monday)
	assert.Equal(t, []string{"2024-01-08", "2024-01-14"}, week.Value)
	assert.True(t, week.IsRange)
}

func TestParseAt_Range(t *testing.T) {
	p := New(time.UTC)

	tests := []struct {
		name           string
		expr           string
		wantValue      []string
		wantDateOnly   bool
		wantConfidence float64
	}{
		{
			name:           "昨天到今天",
			expr:           "昨天到今天",
			wantValue:      []string{"2024-01-14", "2024-01-15"},
			wantDateOnly:   true,
			wantConfidence: 1.0,
		},
		{
			name:           "从昨天到今天剥掉前导从",
			expr:           "从昨天到今天",
			wantValue:      []string{"2024-01-14", "2024-01-15"},
			wantDateOnly:   true,
			wantConfidence: 1.0,
		},
		{
			name:           "昨天至明天",
			expr:           "昨天至明天",
			wantValue:      []string{"2024-01-14", "2024-01-16"},
			wantDateOnly:   true,
			wantConfidence: 1.0,
		},
		{
			name: "上周一到周五",
			expr: "上周一到周五",
			// 前半段 "上周一" 在半表达式里由相对周命中，取区间首元素
			wantValue:      []string{"2024-01-08", "2024-01-19"},
			wantDateOnly:   true,
			wantConfidence: 0.95,
		},
		{
			name:           "混合粒度短板置信度",
			expr:           "三天前到今天",
			wantValue:      []string{"2024-01-12", "2024-01-15"},
			wantDateOnly:   true,
			wantConfidence: 0.95,
		},
		{
			name:           "钟点区间非日期粒度",
			expr:           "上午9点到10点",
			wantValue:      []string{"2024-01-15 09:00:00", "2024-01-15 10:00:00"},
			wantDateOnly:   false,
			wantConfidence: 0.9,
		},
		{
			name:           "波浪线分隔",
			expr:           "昨天~今天",
			wantValue:      []string{"2024-01-14", "2024-01-15"},
			wantDateOnly:   true,
			wantConfidence: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.ParseAt(tt.expr, monday)
			require.True(t, result.IsRange, "expected a range result")
			assert.Equal(t, tt.wantValue, result.Value)
			assert.Equal(t, tt.wantDateOnly, result.IsDateOnly)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
			assert.Equal(t, tt.expr, result.OriginalExpression)
		})
	}
}

func TestParseAt_RangeEndMatchesPointParse(t *testing.T) {
	p := New(time.UTC)

	// 同一参考时刻下，"昨天到今天" 的终点必须等于单独解析 "今天" 的结果
	point := p.ParseAt("今天", monday)
	rng := p.ParseAt("昨天到今天", monday)

	require.True(t, rng.IsRange)
	require.Len(t, rng.Value, 2)
	assert.Equal(t, point.Value[0], rng.Value[1])
}

func TestParseAt_RangeConfidenceIsMin(t *testing.T) {
	p := New(time.UTC)

	// 终点半段置信度 0.9（钟点），起点 1.0（命名日）→ 整体 0.9
	result := p.ParseAt("今天到下午3点", monday)
	require.True(t, result.IsRange)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestParseAt_RangeHalfFailure(t *testing.T) {
	p := New(time.UTC)

	// 任一半段解析失败则区间整体不成立；级联继续后由
	// 相对日前缀匹配兜住 "昨天..." 而不是回退
	result := p.ParseAt("昨天到随便什么", monday)
	assert.False(t, result.IsRange)
	assert.Equal(t, []string{"2024-01-14"}, result.Value)
	assert.Equal(t, ConfidenceExact, result.Confidence)

	// 两半都不可解析时才落到回退
	unmatched := p.ParseAt("某时到某刻", monday)
	assert.False(t, unmatched.IsRange)
	assert.Equal(t, ConfidenceFallback, unmatched.Confidence)
}

func TestParseAt_Fallback(t *testing.T) {
	p := New(time.UTC)

	tests := []string{"随便什么", "", "   ", "hello world"}
	for _, expr := range tests {
		result := p.ParseAt(expr, monday)
		assert.Equal(t, []string{"2024-01-15"}, result.Value, "expr=%q", expr)
		assert.Equal(t, ConfidenceFallback, result.Confidence)
		assert.True(t, result.IsDateOnly)
		assert.False(t, result.IsRange)
	}
}

func TestParseAt_TrimsWhitespace(t *testing.T) {
	p := New(time.UTC)

	result := p.ParseAt("  昨天  ", monday)
	assert.Equal(t, []string{"2024-01-14"}, result.Value)
	assert.Equal(t, "昨天", result.OriginalExpression)
}

func TestParseAt_Idempotent(t *testing.T) {
	p := New(time.UTC, WithLunarConverter(lunarStub2024()))

	for _, expr := range []string{"昨天", "上周三", "春节期间", "随便什么", "昨天到今天"} {
		first := p.ParseAt(expr, monday)
		second := p.ParseAt(expr, monday)
		assert.Equal(t, first, second, "expr=%q", expr)
	}
}

func TestParseAt_ConfidenceOrdering(t *testing.T) {
	p := New(time.UTC)

	// 命名表 ≥ 数字模式 ≥ 回退，对每个同时具备两种写法的类目成立
	named := p.ParseAt("昨天", monday).Confidence
	pattern := p.ParseAt("三天前", monday).Confidence
	fallback := p.ParseAt("随便什么", monday).Confidence
	assert.GreaterOrEqual(t, named, pattern)
	assert.GreaterOrEqual(t, pattern, fallback)

	namedWeek := p.ParseAt("上周", monday).Confidence
	patternWeek := p.ParseAt("两周前", monday).Confidence
	assert.GreaterOrEqual(t, namedWeek, patternWeek)
	assert.GreaterOrEqual(t, patternWeek, fallback)

	namedMonth := p.ParseAt("本月", monday).Confidence
	patternMonth := p.ParseAt("三个月前", monday).Confidence
	assert.GreaterOrEqual(t, namedMonth, patternMonth)
	assert.GreaterOrEqual(t, patternMonth, fallback)
}

func TestParse_UsesParserTimezone(t *testing.T) {
	p := New(time.UTC)

	result := p.Parse("今天")
	want := time.Now().In(time.UTC).Format(dateLayout)
	assert.Equal(t, []string{want}, result.Value)
	assert.Equal(t, ConfidenceExact, result.Confidence)
}

func TestParsedTime_MarshalJSON(t *testing.T) {
	point := ParsedTime{
		Value:              []string{"2024-01-15"},
		IsDateOnly:         true,
		OriginalExpression: "今天",
		Confidence:         1.0,
	}
	data, err := json.Marshal(point)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"value": "2024-01-15",
		"is_range": false,
		"is_date_only": true,
		"original_expression": "今天",
		"confidence": 1.0
	}`, string(data))

	rng := ParsedTime{
		Value:              []string{"2024-01-08", "2024-01-14"},
		IsRange:            true,
		IsDateOnly:         true,
		OriginalExpression: "上周",
		Confidence:         0.95,
	}
	data, err = json.Marshal(rng)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"value": ["2024-01-08", "2024-01-14"],
		"is_range": true,
		"is_date_only": true,
		"original_expression": "上周",
		"confidence": 0.95
	}`, string(data))
}
