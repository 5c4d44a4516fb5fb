// Package normalize turns raw CSV cells into canonical values. Every function here is
// total: invalid input degrades to a zero value, nothing returns an error or panics.
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/ougirez/fishstats/internal/pkg/constants"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Casers keep state, so each goroutine borrows its own.
var upperCasers = sync.Pool{
	New: func() any { return cases.Upper(language.Spanish) },
}

// Text trims and upper-cases v with Spanish case mapping ("ñ" -> "Ñ").
func Text(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	c := upperCasers.Get().(cases.Caser)
	defer upperCasers.Put(c)
	return c.String(v)
}

type macroRegion struct {
	token     string
	code      float64
	contains  []string
	exactText []string
}

var macroRegions = []macroRegion{
	{
		token:     constants.RegionLagos,
		code:      10,
		contains:  []string{"LAGOS", "X REGION", "X REGIÓN", "10 REGION", "10 REGIÓN"},
		exactText: []string{"X", "10", "10,0", "10.0"},
	},
	{
		token:     constants.RegionAysen,
		code:      11,
		contains:  []string{"AYSEN", "AYSÉN", "XI REGION", "XI REGIÓN", "11 REGION", "11 REGIÓN"},
		exactText: []string{"XI", "11", "11,0", "11.0"},
	},
	{
		token:     constants.RegionMagallanes,
		code:      12,
		contains:  []string{"MAGALLANES", "ANTARTICA", "ANTÁRTICA", "XII REGION", "XII REGIÓN", "12 REGION", "12 REGIÓN"},
		exactText: []string{"XII", "12", "12,0", "12.0"},
	},
}

// containsWord reports whether s occurs in text at a word start, so "X REGION" does
// not match inside "IX REGION".
func containsWord(text, s string) bool {
	for i := 0; i <= len(text)-len(s); {
		j := strings.Index(text[i:], s)
		if j < 0 {
			return false
		}
		at := i + j
		if at == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:at])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[at:])
		i = at + size
	}
	return false
}

func (r macroRegion) matches(text string, code float64, hasCode bool) bool {
	for _, s := range r.contains {
		if containsWord(text, s) {
			return true
		}
	}
	for _, s := range r.exactText {
		if text == s {
			return true
		}
	}
	return hasCode && code == r.code
}

// Region canonicalizes v to LAGOS, AYSEN or MAGALLANES when it names one of the
// tracked macro-regions by spelling, roman numeral or numeric code ("10,0" == 10).
// Anything else comes back as Text(v).
func Region(v string) string {
	text := Text(v)
	if text == "" {
		return ""
	}

	code, hasCode := leadingFloat(strings.Replace(v, ",", ".", 1))
	for _, r := range macroRegions {
		if r.matches(text, code, hasCode) {
			return r.token
		}
	}

	return text
}

func IsMacroRegion(v string) bool {
	switch Region(v) {
	case constants.RegionLagos, constants.RegionAysen, constants.RegionMagallanes:
		return true
	default:
		return false
	}
}

// fold lower-cases and strips accents so "Año" and "ano" name the same column.
func fold(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(s, "\ufeff"))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
