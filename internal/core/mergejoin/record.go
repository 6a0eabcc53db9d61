// Package mergejoin interleaves the pre-sorted per-kind forum activity
// aggregates into one chronologically ordered report sequence.
//
// Inputs arrive already grouped and sorted by the upstream aggregation:
// one record per kind and calendar day, ascending by day. The merge walks
// the three streams with one forward-only cursor each and repeatedly emits
// the smallest current date key. Ties resolve in fixed kind order Thread,
// then Response, then Comment; that ordering is a compatibility contract
// with existing report consumers and must not change.
package mergejoin

import (
	"fmt"
	"time"
)

// Kind tags which aggregate stream a record belongs to
type Kind uint8

const (
	// KindThread is a top-level discussion-starting post
	KindThread Kind = iota
	// KindResponse is a top-level reply to a thread (a comment without a parent)
	KindResponse
	// KindComment is a reply to a response (a comment with a parent)
	KindComment

	kindCount
)

// String returns the report label for the kind
func (k Kind) String() string {
	switch k {
	case KindThread:
		return "thread"
	case KindResponse:
		return "response"
	case KindComment:
		return "comment"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// DateKey is a calendar day decomposed as (year, month, day)
type DateKey struct {
	Year  int
	Month int
	Day   int
}

// Valid reports whether the key denotes a real Gregorian calendar date
func (d DateKey) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

// Compare orders two keys under standard date ordering (-1, 0, +1)
func (d DateKey) Compare(o DateKey) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	case d.Day != o.Day:
		return sign(d.Day - o.Day)
	default:
		return 0
	}
}

func (d DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// PeekKey is a DateKey plus an explicit past-the-end marker.
// The marker compares greater than every real date, so exhausted streams
// never win the selection; a max calendar constant is deliberately avoided.
type PeekKey struct {
	Date DateKey
	End  bool
}

// LessEq reports whether p sorts at or before o
func (p PeekKey) LessEq(o PeekKey) bool {
	if p.End {
		return o.End
	}
	if o.End {
		return true
	}
	return p.Date.Compare(o.Date) <= 0
}

// Record is one summarized report row for a (kind, calendar day) pair
type Record struct {
	Kind      Kind
	Date      DateKey
	Posts     int64
	NetPoints int64
	UpVotes   int64
	DownVotes int64
}
