package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func window(text string) driven.Window {
	return driven.Window{Text: text, Normalised: textnorm.Normalise(text), Now: now}
}

func TestRule_Detect(t *testing.T) {
	r := New()

	assert.Equal(t, "registration", r.Name())
	assert.True(t, r.Detect(window("Registracija ističe 15.04.2024")))
	assert.True(t, r.Detect(window("tehnički pregled sutra")))
	assert.True(t, r.Detect(window("Insurance renewal")))
	assert.False(t, r.Detect(window("zamena ulja")))
}

func TestRule_Extract(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		subject    string
		object     string
		confidence float64
	}{
		{"absolute date", "Registracija do 15.04.2024", SubjectRegistration, "2024-04-15", domain.ConfidenceStructured},
		{"relative date", "tehnicki pregled sutra", SubjectRegistration, "2024-03-11", domain.ConfidenceStructured},
		{"insurance", "osiguranje kola 01.05.24", SubjectInsurance, "2024-05-01", domain.ConfidenceStructured},
		{"keyword only", "produziti registraciju", SubjectRegistration, "", domain.ConfidenceKeyword},
		{"invalid date", "registracija 31.02.2024", SubjectRegistration, "", domain.ConfidenceKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := New().Extract(window(tt.text))
			require.Len(t, facts, 1)

			f := facts[0]
			assert.Equal(t, "car", f.Domain)
			assert.Equal(t, domain.PredicateDueOn, f.Predicate)
			assert.Equal(t, tt.subject, f.Subject)
			assert.Equal(t, tt.object, f.Object)
			assert.Equal(t, tt.confidence, f.Confidence)
			if tt.object != "" {
				require.NotNil(t, f.Trigger)
				assert.Equal(t, domain.TriggerDate, f.Trigger.Kind)
				assert.Equal(t, domain.CmpLessEqual, f.Trigger.Cmp)
			} else {
				assert.Nil(t, f.Trigger)
			}
		})
	}
}

func TestRule_ExtraKeywords(t *testing.T) {
	r := New("MOT")

	facts := r.Extract(window("MOT due 02.02.2025"))
	require.Len(t, facts, 1)
	assert.Equal(t, SubjectRegistration, facts[0].Subject)
}
