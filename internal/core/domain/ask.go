package domain

// ScoredNote is a note with its relevance score and match trail.
// It is produced by the scorer and consumed by the synthesiser.
type ScoredNote struct {
	// Note is the matched note.
	Note Note

	// Score is the additive relevance score.
	Score float64

	// Why holds one human-readable reason per contributing signal.
	Why []string

	// Facts are the note's facts that correlated with the query.
	Facts []Fact
}

// Match is one ranked piece of evidence in an AskResult.
type Match struct {
	// NoteID identifies the matched note.
	NoteID string `json:"noteId"`

	// Score is the relevance score.
	Score float64 `json:"score"`

	// Why holds the match reasons.
	Why []string `json:"why"`
}

// AskResult is the answer to a single query.
type AskResult struct {
	// Answer is never blank.
	Answer string `json:"answer"`

	// Matches are ordered by descending score.
	Matches []Match `json:"matches"`
}
