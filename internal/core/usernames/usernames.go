// Package usernames normalizes and orders forum author usernames for
// per-student reporting. Upstream forum stores accept usernames in mixed
// Unicode forms, so rows for the same visible name can arrive under
// different byte sequences. Clean normalizes to a canonical form and
// Sorter orders names case-insensitively so report rows group and sort
// the way an instructor reads them.
package usernames

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Clean returns the canonical form of a username: valid UTF-8, NFKC
// normalized, surrounding whitespace trimmed. Empty or whitespace-only
// input cleans to "".
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	s = norm.NFKC.String(s)
	return strings.TrimSpace(s)
}

// Sorter orders usernames with a case-insensitive Unicode collator.
// Not safe for concurrent use; build one per sort.
type Sorter struct {
	col *collate.Collator
}

// NewSorter constructs a Sorter.
func NewSorter() *Sorter {
	return &Sorter{col: collate.New(language.Und, collate.IgnoreCase)}
}

// Less reports whether a orders before b.
func (s *Sorter) Less(a, b string) bool {
	return s.col.CompareString(a, b) < 0
}

// Sort orders names in place.
func (s *Sorter) Sort(names []string) {
	s.col.SortStrings(names)
}
