package normalize

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinYear = 1900
	MaxYear = 2100
)

func isSentinel(s string) bool {
	switch s {
	case "", "-", "N/A", "null":
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// leadingFloat parses the longest numeric prefix of s ("12.5 t" -> 12.5).
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// leadingInt parses the longest base-10 integer prefix of s ("2013,0" -> 2013).
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Decimal parses European ("1.234,56") and Anglo ("1,234.56") numbers. When both
// separators appear the later one is the decimal mark; a lone comma is decimal if at
// most three digits follow it, a thousands separator otherwise.
func Decimal(v string) float64 {
	s := strings.TrimSpace(v)
	if isSentinel(s) {
		return 0
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		after := strings.Split(s, ",")[1]
		if after != "" && len(after) <= 3 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	f, ok := leadingFloat(s)
	if !ok {
		return 0
	}
	return f
}

func Integer(v string) int {
	s := strings.TrimSpace(v)
	if isSentinel(s) {
		return 0
	}

	n, ok := leadingInt(s)
	if !ok {
		return 0
	}
	return n
}

// Year returns 0 for anything outside [1900, 2100].
func Year(v string) int {
	y := Integer(v)
	if y < MinYear || y > MaxYear {
		return 0
	}
	return y
}

// Month returns 0 for anything outside [1, 12].
func Month(v string) int {
	m := Integer(v)
	if m < 1 || m > 12 {
		return 0
	}
	return m
}
