package mergejoin

import (
	"testing"

	perr "forumscope/internal/platform/errors"
)

func kinds(recs []Record) []Kind {
	out := make([]Kind, len(recs))
	for i, r := range recs {
		out[i] = r.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []Record, want []Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("merged %d records, want %d (%v)", len(got), len(want), kinds(got))
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("record %d: kind %s, want %s (full: %v)", i, got[i].Kind, k, kinds(got))
		}
	}
}

func TestMergeInterleavesByDate(t *testing.T) {
	threads := []Record{rec(KindThread, 2021, 1, 2), rec(KindThread, 2021, 1, 5)}
	responses := []Record{rec(KindResponse, 2021, 1, 1), rec(KindResponse, 2021, 1, 4)}
	comments := []Record{rec(KindComment, 2021, 1, 3)}

	got, err := Merge(threads, responses, comments)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	assertKinds(t, got, []Kind{KindResponse, KindThread, KindComment, KindResponse, KindThread})

	for i := 1; i < len(got); i++ {
		if got[i].Date.Compare(got[i-1].Date) < 0 {
			t.Fatalf("date regression at %d: %s after %s", i, got[i].Date, got[i-1].Date)
		}
	}
}

func TestMergeTieBreak(t *testing.T) {
	// Same date across streams resolves thread, then response, then comment.
	same := day(2021, 6, 15)
	got, err := Merge(
		[]Record{{Kind: KindThread, Date: same}},
		[]Record{{Kind: KindResponse, Date: same}},
		[]Record{{Kind: KindComment, Date: same}},
	)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	assertKinds(t, got, []Kind{KindThread, KindResponse, KindComment})
}

func TestMergePartialTies(t *testing.T) {
	cases := []struct {
		name                         string
		threads, responses, comments []Record
		want                         []Kind
	}{
		{
			name:      "thread and response tie, comment later",
			threads:   []Record{rec(KindThread, 2021, 1, 1)},
			responses: []Record{rec(KindResponse, 2021, 1, 1)},
			comments:  []Record{rec(KindComment, 2021, 1, 2)},
			want:      []Kind{KindThread, KindResponse, KindComment},
		},
		{
			name:      "response and comment tie ahead of thread",
			threads:   []Record{rec(KindThread, 2021, 1, 3)},
			responses: []Record{rec(KindResponse, 2021, 1, 1)},
			comments:  []Record{rec(KindComment, 2021, 1, 1)},
			want:      []Kind{KindResponse, KindComment, KindThread},
		},
		{
			name:     "thread and comment tie, no responses",
			threads:  []Record{rec(KindThread, 2021, 1, 1)},
			comments: []Record{rec(KindComment, 2021, 1, 1)},
			want:     []Kind{KindThread, KindComment},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Merge(c.threads, c.responses, c.comments)
			if err != nil {
				t.Fatalf("Merge: %v", err)
			}
			assertKinds(t, got, c.want)
		})
	}
}

func TestMergeScenarios(t *testing.T) {
	t1 := rec(KindThread, 2021, 3, 1)
	t2 := rec(KindThread, 2021, 3, 5)
	r1 := rec(KindResponse, 2021, 3, 1)
	c1 := rec(KindComment, 2021, 3, 2)
	c5 := rec(KindComment, 2021, 3, 9)

	cases := []struct {
		name                         string
		threads, responses, comments []Record
		want                         []Kind
	}{
		{
			name:      "single shared date",
			threads:   []Record{t1},
			responses: []Record{r1},
			want:      []Kind{KindThread, KindResponse},
		},
		{
			name:      "staggered dates",
			threads:   []Record{t2},
			responses: []Record{r1},
			comments:  []Record{c1},
			want:      []Kind{KindResponse, KindComment, KindThread},
		},
		{
			name:     "single stream only",
			comments: []Record{c5},
			want:     []Kind{KindComment},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Merge(c.threads, c.responses, c.comments)
			if err != nil {
				t.Fatalf("Merge: %v", err)
			}
			assertKinds(t, got, c.want)
		})
	}
}

func TestMergeEmptyInputs(t *testing.T) {
	got, err := Merge(nil, nil, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("merged %d records from empty inputs", len(got))
	}
}

func TestMergeSingleStreamIdentity(t *testing.T) {
	responses := []Record{
		rec(KindResponse, 2021, 1, 1),
		rec(KindResponse, 2021, 1, 2),
		rec(KindResponse, 2021, 2, 28),
	}
	got, err := Merge(nil, responses, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(got) != len(responses) {
		t.Fatalf("merged %d records, want %d", len(got), len(responses))
	}
	for i := range responses {
		if got[i] != responses[i] {
			t.Fatalf("record %d changed: %+v != %+v", i, got[i], responses[i])
		}
	}
}

func TestMergeConservesLengthAndPayload(t *testing.T) {
	threads := []Record{
		{Kind: KindThread, Date: day(2021, 1, 1), Posts: 4, NetPoints: 7, UpVotes: 9, DownVotes: 2},
		{Kind: KindThread, Date: day(2021, 1, 8), Posts: 1, NetPoints: -1, UpVotes: 0, DownVotes: 1},
	}
	responses := []Record{
		{Kind: KindResponse, Date: day(2021, 1, 2), Posts: 11, NetPoints: 3, UpVotes: 5, DownVotes: 2},
	}
	comments := []Record{
		{Kind: KindComment, Date: day(2021, 1, 2), Posts: 6, NetPoints: 0, UpVotes: 1, DownVotes: 1},
	}

	got, err := Merge(threads, responses, comments)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if want := len(threads) + len(responses) + len(comments); len(got) != want {
		t.Fatalf("merged %d records, want %d", len(got), want)
	}

	var posts, points int64
	for _, r := range got {
		posts += r.Posts
		points += r.NetPoints
	}
	if posts != 22 || points != 9 {
		t.Fatalf("payload drifted: posts=%d points=%d", posts, points)
	}
}

func TestMergeRejectsKindMismatch(t *testing.T) {
	_, err := Merge([]Record{rec(KindComment, 2021, 1, 1)}, nil, nil)
	if err == nil {
		t.Fatal("expected a schema error")
	}
	if perr.CodeOf(err) != perr.ErrorCodeSchema {
		t.Fatalf("code = %d, want %d", perr.CodeOf(err), perr.ErrorCodeSchema)
	}
}

func TestMergeRejectsInvalidDate(t *testing.T) {
	_, err := Merge(nil, []Record{rec(KindResponse, 2021, 2, 30)}, nil)
	if err == nil {
		t.Fatal("expected a data error")
	}
	if perr.CodeOf(err) != perr.ErrorCodeData {
		t.Fatalf("code = %d, want %d", perr.CodeOf(err), perr.ErrorCodeData)
	}
}

func TestMergeRejectsUnsortedStream(t *testing.T) {
	threads := []Record{
		rec(KindThread, 2021, 2, 1),
		rec(KindThread, 2021, 1, 1),
	}
	_, err := Merge(threads, nil, nil)
	if err == nil {
		t.Fatal("expected an order error")
	}
	if perr.CodeOf(err) != perr.ErrorCodeOrder {
		t.Fatalf("code = %d, want %d", perr.CodeOf(err), perr.ErrorCodeOrder)
	}
}

func TestMergeAllowsEqualDatesWithinStream(t *testing.T) {
	// Sortedness is non-strict; duplicate date keys in one stream pass through.
	comments := []Record{
		rec(KindComment, 2021, 5, 5),
		rec(KindComment, 2021, 5, 5),
	}
	got, err := Merge(nil, nil, comments)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("merged %d records, want 2", len(got))
	}
}
