package mergejoin

import (
	perr "forumscope/internal/platform/errors"
)

// Merge interleaves the three pre-sorted streams into one sequence ordered
// by date key. Records sharing a day keep the fixed Thread, Response,
// Comment order. The output length is always the sum of the input lengths.
//
// Each record is checked as it is emitted: a kind tag that does not match
// its stream is a schema error, an impossible calendar date is a data
// error, and a date regression within a stream is an order error. Any of
// these aborts the merge; a partial report is never returned.
func Merge(threads, responses, comments []Record) ([]Record, error) {
	cursors := [kindCount]*Cursor{
		NewCursor(KindThread, threads),
		NewCursor(KindResponse, responses),
		NewCursor(KindComment, comments),
	}

	out := make([]Record, 0, len(threads)+len(responses)+len(comments))
	var last [kindCount]struct {
		key  DateKey
		seen bool
	}

	for {
		kt := cursors[KindThread].Peek()
		kr := cursors[KindResponse].Peek()
		kc := cursors[KindComment].Peek()

		// sole termination condition: every stream reports the end marker
		if kt.End && kr.End && kc.End {
			return out, nil
		}

		// the order of these checks is the tie-break
		var sel *Cursor
		switch {
		case kt.LessEq(kr) && kt.LessEq(kc):
			sel = cursors[KindThread]
		case kr.LessEq(kt) && kr.LessEq(kc):
			sel = cursors[KindResponse]
		default:
			sel = cursors[KindComment]
		}

		rec := sel.Current()
		if rec.Kind != sel.Kind() {
			return nil, perr.Schemaf("mergejoin: %s stream carries a %s record", sel.Kind(), rec.Kind)
		}
		if !rec.Date.Valid() {
			return nil, perr.Dataf("mergejoin: %s stream has impossible date %s", sel.Kind(), rec.Date)
		}
		idx := sel.Kind()
		if last[idx].seen && rec.Date.Compare(last[idx].key) < 0 {
			return nil, perr.Orderf(
				"mergejoin: %s stream regressed from %s to %s", sel.Kind(), last[idx].key, rec.Date,
			)
		}
		last[idx].key = rec.Date
		last[idx].seen = true

		out = append(out, rec)
		sel.Advance()
	}
}
