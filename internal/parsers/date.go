package parsers

import (
	"regexp"
	"strconv"
	"time"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

// relativeDay maps localised keywords to a day offset from now.
type relativeDay struct {
	words  []string
	offset int
}

// relativeDays is checked in order; longer keywords come first because
// "prekosutra" contains "sutra" and "day after tomorrow" contains "tomorrow".
var relativeDays = []relativeDay{
	{words: []string{"prekosutra", "day after tomorrow"}, offset: 2},
	{words: []string{"sutra", "tomorrow"}, offset: 1},
	{words: []string{"danas", "today"}, offset: 0},
}

// absoluteDate matches DD.MM.YYYY and DD.MM.YY.
var absoluteDate = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4}|\d{2})`)

// ParseDate finds the first date in text and returns it as YYYY-MM-DD.
// Relative keywords are resolved against now (time.Now() when zero) and
// take priority over absolute dates. Absolute matches that fail calendar
// validation are skipped. ok is false when nothing matches.
func ParseDate(text string, now time.Time) (iso string, ok bool) {
	n := textnorm.Normalise(text)
	if n == "" {
		return "", false
	}
	if now.IsZero() {
		now = time.Now()
	}

	for _, rel := range relativeDays {
		if textnorm.HasAnyWord(n, rel.words) {
			return now.AddDate(0, 0, rel.offset).Format(domain.DateLayout), true
		}
	}

	for _, span := range dateSpans(n) {
		if d, valid := span.date(n); valid {
			return d.Format(domain.DateLayout), true
		}
	}
	return "", false
}

// dateSpan is the location of an absolute date candidate in a string.
type dateSpan struct {
	start, end int
	groups     []int
}

func (s dateSpan) date(text string) (time.Time, bool) {
	day, _ := strconv.Atoi(text[s.groups[2]:s.groups[3]])
	month, _ := strconv.Atoi(text[s.groups[4]:s.groups[5]])
	yearText := text[s.groups[6]:s.groups[7]]
	year, _ := strconv.Atoi(yearText)
	if len(yearText) == 2 {
		year += 2000
	}
	return validDate(year, month, day)
}

// dateSpans returns absolute date candidates not embedded in longer digit runs.
func dateSpans(text string) []dateSpan {
	var spans []dateSpan
	for _, m := range absoluteDate.FindAllStringSubmatchIndex(text, -1) {
		if isDigitAt(text, m[0]-1) || isDigitAt(text, m[1]) {
			continue
		}
		spans = append(spans, dateSpan{start: m[0], end: m[1], groups: m})
	}
	return spans
}

// validDate rejects dates that time.Date would silently normalise.
func validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func isDigitAt(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] >= '0' && s[i] <= '9'
}
