package mergejoin

import (
	"testing"

	"forumscope/internal/platform/testkit"
)

func day(y, m, d int) DateKey { return DateKey{Year: y, Month: m, Day: d} }

func rec(k Kind, y, m, d int) Record {
	return Record{Kind: k, Date: day(y, m, d), Posts: 1}
}

func TestCursorWalksForward(t *testing.T) {
	c := NewCursor(KindThread, []Record{
		rec(KindThread, 2021, 1, 1),
		rec(KindThread, 2021, 1, 3),
	})

	if c.Exhausted() {
		t.Fatalf("fresh cursor reports exhausted")
	}
	if got := c.Peek(); got.End || got.Date != day(2021, 1, 1) {
		t.Fatalf("Peek = %+v", got)
	}
	// Peek is side-effect free
	if got := c.Peek(); got.Date != day(2021, 1, 1) {
		t.Fatalf("second Peek moved the cursor: %+v", got)
	}
	if got := c.Current().Date; got != day(2021, 1, 1) {
		t.Fatalf("Current = %v", got)
	}

	c.Advance()
	if got := c.Current().Date; got != day(2021, 1, 3) {
		t.Fatalf("Current after Advance = %v", got)
	}

	c.Advance()
	if !c.Exhausted() {
		t.Fatalf("cursor not exhausted after the last record")
	}
	if got := c.Peek(); !got.End {
		t.Fatalf("exhausted Peek = %+v, want End", got)
	}
}

func TestCursorEmptyStreamIsBornExhausted(t *testing.T) {
	c := NewCursor(KindComment, nil)
	if !c.Exhausted() {
		t.Fatalf("empty cursor not exhausted")
	}
	if got := c.Peek(); !got.End {
		t.Fatalf("empty Peek = %+v, want End", got)
	}
}

func TestCursorGuardsProgrammerErrors(t *testing.T) {
	c := NewCursor(KindResponse, nil)
	testkit.MustPanic(t, func() { c.Current() })
	testkit.MustPanic(t, func() { c.Advance() })
}

func TestPeekKeyOrdering(t *testing.T) {
	end := PeekKey{End: true}
	jan1 := PeekKey{Date: day(2021, 1, 1)}
	feb1 := PeekKey{Date: day(2021, 2, 1)}

	cases := []struct {
		name string
		a, b PeekKey
		want bool
	}{
		{"date before date", jan1, feb1, true},
		{"date after date", feb1, jan1, false},
		{"equal dates", jan1, jan1, true},
		{"date before end", jan1, end, true},
		{"end after date", end, jan1, false},
		{"end vs end", end, end, true},
	}
	for _, c := range cases {
		if got := c.a.LessEq(c.b); got != c.want {
			t.Fatalf("%s: LessEq = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDateKeyValid(t *testing.T) {
	cases := []struct {
		d    DateKey
		want bool
	}{
		{day(2021, 1, 1), true},
		{day(2020, 2, 29), true},  // leap day
		{day(2021, 2, 29), false}, // not a leap year
		{day(2021, 4, 31), false}, // 30-day month
		{day(2021, 13, 1), false},
		{day(2021, 0, 1), false},
		{day(2021, 1, 0), false},
		{day(2021, 1, 32), false},
	}
	for _, c := range cases {
		if got := c.d.Valid(); got != c.want {
			t.Fatalf("Valid(%s) = %v, want %v", c.d, got, c.want)
		}
	}
}
