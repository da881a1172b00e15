package domain

import (
	"fmt"
	"time"
)

// Confidence levels assigned by the extractor.
const (
	// ConfidenceStructured is used when a keyword matched and a trigger parsed.
	ConfidenceStructured = 0.95

	// ConfidenceKeyword is used when only the keyword matched.
	ConfidenceKeyword = 0.7
)

// GeneralDomain is the domain of facts not tied to a subject area.
// Facts from a specific domain take precedence over equivalent general ones.
const GeneralDomain = "general"

// DateLayout is the ISO layout used for date objects and triggers.
const DateLayout = "2006-01-02"

// Predicate discriminates the kind of assertion a Fact makes.
type Predicate string

// Available predicates.
const (
	// PredicateDueOn asserts something is due on a date.
	PredicateDueOn Predicate = "due_on"

	// PredicateNextDue asserts something is next due at a threshold.
	PredicateNextDue Predicate = "next_due"

	// PredicateNumber records a measured value.
	PredicateNumber Predicate = "number"

	// PredicateTopic tags the note with a subject area.
	PredicateTopic Predicate = "topic"
)

// IsValid returns true if the predicate is recognised.
func (p Predicate) IsValid() bool {
	switch p {
	case PredicateDueOn, PredicateNextDue, PredicateNumber, PredicateTopic:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Predicate) String() string {
	return string(p)
}

// TriggerKind discriminates Trigger values.
type TriggerKind string

// Available trigger kinds.
const (
	// TriggerMileage is a distance threshold; Value is in Unit.
	TriggerMileage TriggerKind = "mileage"

	// TriggerDate is a calendar date; Value is Unix seconds at UTC midnight.
	TriggerDate TriggerKind = "date"
)

// IsValid returns true if the trigger kind is recognised.
func (k TriggerKind) IsValid() bool {
	return k == TriggerMileage || k == TriggerDate
}

// Comparison is the operator applied to a trigger value.
type Comparison string

// Available comparisons.
const (
	CmpEqual        Comparison = "="
	CmpGreaterEqual Comparison = ">="
	CmpLessEqual    Comparison = "<="
)

// Trigger is the structured condition attached to a Fact.
type Trigger struct {
	// Kind selects how Value is interpreted.
	Kind TriggerKind `json:"kind"`

	// Value is the threshold (distance or Unix seconds).
	Value float64 `json:"value"`

	// Unit is "km" or "mi" for mileage triggers.
	Unit string `json:"unit,omitempty"`

	// Cmp is the comparison operator, if any.
	Cmp Comparison `json:"cmp,omitempty"`
}

// MileageTrigger builds a mileage trigger.
func MileageTrigger(value int64, unit string, cmp Comparison) *Trigger {
	return &Trigger{Kind: TriggerMileage, Value: float64(value), Unit: unit, Cmp: cmp}
}

// DateTrigger builds a date trigger from an ISO date.
// It returns nil if the date does not parse.
func DateTrigger(iso string, cmp Comparison) *Trigger {
	t, err := time.Parse(DateLayout, iso)
	if err != nil {
		return nil
	}
	return &Trigger{Kind: TriggerDate, Value: float64(t.Unix()), Cmp: cmp}
}

// Date returns the trigger's date for date triggers.
func (t *Trigger) Date() (time.Time, bool) {
	if t == nil || t.Kind != TriggerDate {
		return time.Time{}, false
	}
	return time.Unix(int64(t.Value), 0).UTC(), true
}

// String renders the trigger for display, e.g. ">= 100000 km".
func (t *Trigger) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TriggerDate:
		d, _ := t.Date()
		return fmt.Sprintf("%s %s", t.Cmp, d.Format(DateLayout))
	case TriggerMileage:
		return fmt.Sprintf("%s %d %s", t.Cmp, int64(t.Value), t.Unit)
	default:
		return string(t.Kind)
	}
}

// Fact is a structured, domain-tagged assertion derived from a note's text.
// Facts are never mutated in place; re-extraction replaces them wholesale.
type Fact struct {
	// ID is generated at extraction time.
	ID string `json:"id"`

	// Domain is the subject area, e.g. "car".
	Domain string `json:"domain"`

	// Subject is what the fact is about, e.g. "oil_change".
	Subject string `json:"subject"`

	// Predicate selects the fact's shape.
	Predicate Predicate `json:"predicate"`

	// Object is the human-readable value, e.g. "2024-03-11" or "100000 km".
	Object string `json:"object,omitempty"`

	// Trigger is the parsed condition, nil for keyword-only facts.
	Trigger *Trigger `json:"trigger,omitempty"`

	// Confidence is in [0,1].
	Confidence float64 `json:"confidence"`

	// SourceSpan is the original text the fact was derived from.
	SourceSpan string `json:"sourceSpan"`
}

// Structured reports whether the fact carries a parsed trigger.
func (f Fact) Structured() bool {
	return f.Trigger != nil
}

// Equivalent reports whether two facts assert the same thing, ignoring ID.
func (f Fact) Equivalent(o Fact) bool {
	if f.Domain != o.Domain || f.Subject != o.Subject || f.Predicate != o.Predicate ||
		f.Object != o.Object || f.Confidence != o.Confidence {
		return false
	}
	if (f.Trigger == nil) != (o.Trigger == nil) {
		return false
	}
	return f.Trigger == nil || *f.Trigger == *o.Trigger
}
