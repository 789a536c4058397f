package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// fallbackCourseCode is used when a product name yields fewer than two
// code letters. BAG is the org's catch-all catalogue code.
const fallbackCourseCode = "BAG"

var monthsShort = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var monthsLong = map[string]time.Month{
	"june": time.June, "july": time.July, "sept": time.September,
}

// ExtractCourseCode derives a course code from a free-text product name.
//
// The text before the first hyphen is split into words; each word
// starting with an uppercase letter contributes its leading run of
// uppercase letters. "Professional Scrum Master - 6-7 Feb 25" gives PSM,
// "PSU - 6-7 Feb 25" gives PSU. Fewer than two letters falls back to the
// catch-all code.
func ExtractCourseCode(name string) string {
	head := name
	if i := strings.Index(head, "-"); i >= 0 {
		head = head[:i]
	}

	var code strings.Builder
	for _, word := range strings.Fields(head) {
		for _, r := range word {
			if !unicode.IsUpper(r) {
				break
			}
			code.WriteRune(r)
		}
	}
	if code.Len() < 2 {
		return fallbackCourseCode
	}
	return code.String()
}

// ExtractStartDate parses a course start date out of a product name such
// as "PSM - 6-7 Feb 25".
//
// The segment after the last " - " separator is tokenized; the first
// purely numeric token is the day, the first alphabetic token the month
// abbreviation (3- and 4-letter names), and the last numeric token of
// length 2 or 4 the year (2-digit years are 2000-based). A missing year
// is inferred from the order date: a month earlier than the order's
// month means next year.
func ExtractStartDate(name string, orderDate time.Time) (time.Time, bool) {
	seg := name
	if i := strings.LastIndex(seg, " - "); i >= 0 {
		seg = seg[i+3:]
	}

	var (
		day      int
		dayIdx   = -1
		month    time.Month
		year     int
		hasMonth bool
	)

	tokens := tokenize(seg)
	for i, tok := range tokens {
		switch {
		case dayIdx < 0 && isNumeric(tok):
			day = atoi(tok)
			dayIdx = i
		case !hasMonth && isAlphabetic(tok):
			if m, ok := parseMonth(tok); ok {
				month = m
				hasMonth = true
			}
		}
	}
	for i := len(tokens) - 1; i > dayIdx; i-- {
		tok := tokens[i]
		if isNumeric(tok) && (len(tok) == 2 || len(tok) == 4) {
			year = atoi(tok)
			if len(tok) == 2 {
				year += 2000
			}
			break
		}
	}

	if dayIdx < 0 || !hasMonth || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if year == 0 {
		year = orderDate.Year()
		if month < orderDate.Month() {
			year++
		}
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// SynthesizeSKU builds a fallback SKU for a line item missing one:
// CODE-ddMMyy when a start date can be extracted from the name, else the
// code with a random suffix so every ticket still gets a distinct key.
func SynthesizeSKU(name string, orderDate time.Time) string {
	code := ExtractCourseCode(name)
	if start, ok := ExtractStartDate(name, orderDate); ok {
		return code + "-" + start.Format("020106")
	}
	return code + "-" + uuid.NewString()[:8]
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func parseMonth(tok string) (time.Month, bool) {
	low := strings.ToLower(tok)
	if m, ok := monthsLong[low]; ok {
		return m, true
	}
	if len(low) >= 3 {
		if m, ok := monthsShort[low[:3]]; ok {
			return m, true
		}
	}
	return 0, false
}
