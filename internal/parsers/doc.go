// Package parsers provides the date and quantity sub-parsers used by
// the domain rules. Both are total: a missing or malformed pattern is
// reported through the boolean result, never as an error.
package parsers
