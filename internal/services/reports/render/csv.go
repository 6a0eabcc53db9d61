// Package render writes reports as CSV
package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"forumscope/internal/services/reports/domain"
)

// ForumCSV writes the merged course activity report with a header row
func ForumCSV(w io.Writer, rep domain.ForumReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Type", "Posts", "Net Points", "Up Votes", "Down Votes"}); err != nil {
		return err
	}
	for _, r := range rep.Rows {
		rec := []string{
			r.Date,
			r.Type,
			strconv.FormatInt(r.Posts, 10),
			strconv.FormatInt(r.NetPoints, 10),
			strconv.FormatInt(r.UpVotes, 10),
			strconv.FormatInt(r.DownVotes, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// StudentCSV writes the per-student report with a header row
func StudentCSV(w io.Writer, rep domain.StudentReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Username", "Posts", "Votes"}); err != nil {
		return err
	}
	for _, r := range rep.Rows {
		rec := []string{
			r.Username,
			strconv.FormatInt(r.Posts, 10),
			strconv.FormatInt(r.Votes, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
