package parsers

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

// Unit is a distance unit.
type Unit string

// Supported units.
const (
	UnitKilometres Unit = "km"
	UnitMiles      Unit = "mi"
)

// Quantity is a magnitude parsed from text.
type Quantity struct {
	// Value is the magnitude in Unit.
	Value int64

	// Unit is always set; km unless a mile token is present.
	Unit Unit

	// Digits is the number of digits in a plain run (0 for shorthand).
	Digits int

	// Shorthand is true for "50k" style matches.
	Shorthand bool
}

var (
	// shorthand matches "50k", "1.5k" and "50 k" but not "50km" or "5kg".
	// The integer part is capped at four digits (under 10000k).
	shorthand = regexp.MustCompile(`(\d{1,4}(?:[.,]\d+)?)\s?k\b`)

	// plainRun matches digit runs with optional thousands separators.
	plainRun = regexp.MustCompile(`\d+(?:[ ._,]\d{3})*`)

	// mileToken matches mile units. The bare "mi" is also the Serbian
	// "we", so it only counts directly after a number or a shorthand.
	mileToken = regexp.MustCompile(`\d\s?k?\s?mi\b|\bmiles?\b|\bmilj[aeu]\b`)
)

const (
	minPlainDigits = 2
	maxPlainDigits = 7
)

// ParseQuantity returns the first quantity in text. Shorthand magnitudes
// take priority over plain digit runs. ok is false when no numeric
// pattern is present; q.Unit is set either way.
func ParseQuantity(text string) (q Quantity, ok bool) {
	n := textnorm.Normalise(text)
	candidates := quantities(n)
	if len(candidates) == 0 {
		return Quantity{Unit: unitOf(n)}, false
	}
	return candidates[0], true
}

// ParseMileage returns the first quantity plausible as a vehicle mileage:
// a shorthand magnitude, or a plain run of at least four digits. Shorter
// runs (extensions, small counts) are ignored.
func ParseMileage(text string) (q Quantity, ok bool) {
	n := textnorm.Normalise(text)
	for _, c := range quantities(n) {
		if c.Shorthand || c.Digits >= 4 {
			return c, true
		}
	}
	return Quantity{Unit: unitOf(n)}, false
}

// quantities lists all candidates in priority order: shorthand matches
// first, then plain runs, each in text order. Digits belonging to an
// absolute date are never treated as a quantity.
func quantities(n string) []Quantity {
	if n == "" {
		return nil
	}
	unit := unitOf(n)
	dates := dateSpans(n)

	var out []Quantity
	for _, m := range shorthand.FindAllStringSubmatchIndex(n, -1) {
		if isDigitAt(n, m[0]-1) || insideDate(dates, m[0]) {
			continue
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(n[m[2]:m[3]], ",", "."), 64)
		if err != nil {
			continue
		}
		out = append(out, Quantity{Value: int64(math.Round(f * 1000)), Unit: unit, Shorthand: true})
	}

	for _, m := range plainRun.FindAllStringIndex(n, -1) {
		if insideDate(dates, m[0]) {
			continue
		}
		digits := stripSeparators(n[m[0]:m[1]])
		if len(digits) < minPlainDigits || len(digits) > maxPlainDigits {
			continue
		}
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, Quantity{Value: v, Unit: unit, Digits: len(digits)})
	}
	return out
}

func unitOf(n string) Unit {
	if mileToken.MatchString(n) {
		return UnitMiles
	}
	return UnitKilometres
}

func insideDate(spans []dateSpan, pos int) bool {
	for _, s := range spans {
		if pos >= s.start && pos < s.end {
			return true
		}
	}
	return false
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', ',', '_':
			return -1
		}
		return r
	}, s)
}
