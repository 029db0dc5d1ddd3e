// Package tools exposes the fuzzy time parser as an LLM function-calling
// tool, so agent hosts can register it alongside their other tools.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hrygo/timesense/server/fuzzytime"
	"github.com/hrygo/timesense/server/timezone"
)

// DefaultTimezone is used when the tool input carries no timezone.
const DefaultTimezone = timezone.TimezoneAsiaShanghai

// ParseTimeTool parses Chinese fuzzy time expressions into normalized
// date/datetime strings or ranges.
type ParseTimeTool struct {
	lunar fuzzytime.LunarConverter
}

// NewParseTimeTool creates the parse_time tool. The lunar converter may be
// nil, in which case lunar holidays degrade to the cascade fallback.
func NewParseTimeTool(lunar fuzzytime.LunarConverter) *ParseTimeTool {
	return &ParseTimeTool{lunar: lunar}
}

// Name returns the tool name.
func (t *ParseTimeTool) Name() string {
	return "parse_time"
}

// Description returns the tool description for the LLM.
func (t *ParseTimeTool) Description() string {
	return `解析中文模糊时间表达式为标准日期时间格式。
Parse fuzzy Chinese time expressions to standard datetime format.

Supported expressions:
- Relative time: 昨天, 今天, 明天, 三天前, 两周后
- Time ranges: 昨天到今天, 上周一到周五
- Time of day: 上午9点, 下午3点30分
- Holidays: 国庆节期间, 春节, 中秋节 (including lunar calendar)
- Specific dates: 2024年1月1日, 1月15号`
}

// InputType returns the expected input type schema.
func (t *ParseTimeTool) InputType() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"expression": map[string]interface{}{
				"type":        "string",
				"description": "Fuzzy time expression in Chinese (e.g., 昨天, 三周前, 国庆节期间, 上午9点)",
			},
			"timezone": map[string]interface{}{
				"type":        "string",
				"description": "IANA timezone for parsing (default: Asia/Shanghai)",
			},
		},
		"required": []string{"expression"},
	}
}

// Run executes the tool. The output is a JSON envelope with success, parsed
// and error fields; an invalid timezone is reported inside the envelope
// rather than as a Go error, so the calling agent can read and relay it.
func (t *ParseTimeTool) Run(ctx context.Context, inputJSON string) (string, error) {
	var input struct {
		Expression string `json:"expression"`
		Timezone   string `json:"timezone"`
	}
	if err := json.Unmarshal([]byte(inputJSON), &input); err != nil {
		return "", fmt.Errorf("invalid JSON input: %w", err)
	}

	tz := input.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}

	loc, err := timezone.ParseTimezone(tz)
	if err != nil {
		return marshalOutput(fuzzytime.Output{Success: false, Error: err.Error()})
	}

	parser := fuzzytime.New(loc, fuzzytime.WithLunarConverter(t.lunar))
	result := parser.Parse(input.Expression)

	return marshalOutput(fuzzytime.Output{Success: true, Parsed: &result})
}

func marshalOutput(out fuzzytime.Output) (string, error) {
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode tool output: %w", err)
	}
	return string(data), nil
}
