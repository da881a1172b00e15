package parsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		ok       bool
	}{
		{name: "tomorrow serbian", text: "treba sutra", expected: "2024-03-11", ok: true},
		{name: "tomorrow english", text: "Pay rent TOMORROW", expected: "2024-03-11", ok: true},
		{name: "today", text: "danas servis", expected: "2024-03-10", ok: true},
		{name: "day after tomorrow beats tomorrow", text: "prekosutra", expected: "2024-03-12", ok: true},
		{name: "day after tomorrow english", text: "the day after tomorrow", expected: "2024-03-12", ok: true},
		{name: "relative beats absolute", text: "sutra, ne 20.04.2024", expected: "2024-03-11", ok: true},
		{name: "absolute four digit year", text: "rok 15.04.2024", expected: "2024-04-15", ok: true},
		{name: "absolute two digit year", text: "rok 1.2.25", expected: "2025-02-01", ok: true},
		{name: "trailing period", text: "registracija do 05.06.2024.", expected: "2024-06-05", ok: true},
		{name: "invalid month rejected", text: "32.13.2024", ok: false},
		{name: "invalid then valid", text: "31.02.2024 ili 28.02.2024", expected: "2024-02-28", ok: true},
		{name: "leap day", text: "29.02.2024", expected: "2024-02-29", ok: true},
		{name: "non leap day rejected", text: "29.02.2023", ok: false},
		{name: "embedded in digit run", text: "1234.05.20245", ok: false},
		{name: "no date", text: "kupi mleko", ok: false},
		{name: "empty", text: "", ok: false},
		{name: "sutra inside word ignored", text: "prosutra", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.text, refNow)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDate_ZeroNowUsesCurrentTime(t *testing.T) {
	got, ok := ParseDate("today", time.Time{})

	assert.True(t, ok)
	assert.Equal(t, time.Now().Format("2006-01-02"), got)
}

func TestParseDate_MonthRollover(t *testing.T) {
	got, ok := ParseDate("sutra", time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))

	assert.True(t, ok)
	assert.Equal(t, "2025-01-01", got)
}
