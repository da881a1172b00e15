package oilchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

func window(text string) driven.Window {
	return driven.Window{Text: text, Normalised: textnorm.Normalise(text), Now: time.Now()}
}

func TestRule_Name(t *testing.T) {
	assert.Equal(t, "oil_change", New().Name())
}

func TestRule_Detect(t *testing.T) {
	r := New()

	assert.True(t, r.Detect(window("Sledeća zamena ULJA na 100000km")))
	assert.True(t, r.Detect(window("next oil change at 90k")))
	assert.False(t, r.Detect(window("uljudno zamoliti komsiju")))
	assert.False(t, r.Detect(window("buy milk")))
}

func TestRule_Detect_ExtraKeywords(t *testing.T) {
	r := New("Motorno")

	assert.True(t, r.Detect(window("motorno na 90k")))
}

func TestRule_Extract_Mileage(t *testing.T) {
	facts := New().Extract(window("sledeca zamena ulja na 100000km"))

	require.Len(t, facts, 1)
	f := facts[0]
	assert.Equal(t, "car", f.Domain)
	assert.Equal(t, "oil_change", f.Subject)
	assert.Equal(t, domain.PredicateNextDue, f.Predicate)
	assert.Equal(t, "100000 km", f.Object)
	assert.Equal(t, &domain.Trigger{Kind: domain.TriggerMileage, Value: 100000, Unit: "km", Cmp: domain.CmpGreaterEqual}, f.Trigger)
	assert.Equal(t, domain.ConfidenceStructured, f.Confidence)
}

func TestRule_Extract_PrefersMileageAfterKeyword(t *testing.T) {
	facts := New().Extract(window("na 85000 km, zamena ulja na 95000 km"))

	require.Len(t, facts, 1)
	assert.Equal(t, "95000 km", facts[0].Object)
}

func TestRule_Extract_FallsBackToWholeWindow(t *testing.T) {
	facts := New().Extract(window("90k - oil"))

	require.Len(t, facts, 1)
	assert.Equal(t, "90000 km", facts[0].Object)
}

func TestRule_Extract_KeywordOnly(t *testing.T) {
	facts := New().Extract(window("zameniti ulje uskoro, lokal 12"))

	require.Len(t, facts, 1)
	assert.Nil(t, facts[0].Trigger)
	assert.Empty(t, facts[0].Object)
	assert.Equal(t, domain.ConfidenceKeyword, facts[0].Confidence)
}

func TestRule_Extract_Miles(t *testing.T) {
	facts := New().Extract(window("Oil change at 60,000 miles"))

	require.Len(t, facts, 1)
	assert.Equal(t, "60000 mi", facts[0].Object)
	assert.Equal(t, "mi", facts[0].Trigger.Unit)
}

func TestRule_Extract_ShorthandMiles(t *testing.T) {
	facts := New().Extract(window("service at 50k mi, oil change"))

	require.Len(t, facts, 1)
	assert.Equal(t, "50000 mi", facts[0].Object)
	assert.Equal(t, &domain.Trigger{Kind: domain.TriggerMileage, Value: 50000, Unit: "mi", Cmp: domain.CmpGreaterEqual}, facts[0].Trigger)
}

func TestRule_Extract_OversizedShorthandIgnored(t *testing.T) {
	facts := New().Extract(window("oil change at 99999999999999999999999k"))

	require.Len(t, facts, 1)
	assert.Nil(t, facts[0].Trigger)
	assert.Equal(t, domain.ConfidenceKeyword, facts[0].Confidence)
}
