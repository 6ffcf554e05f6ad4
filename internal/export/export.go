// Package export writes stored submissions as CSV or JSON for spreadsheets
// and external analysis.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/store"
)

// Format names an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be csv or json", s)
	}
}

// utf8BOM makes spreadsheet applications detect UTF-8, which matters for
// Japanese company names and memos.
const utf8BOM = "\ufeff"

// Header returns the CSV column names.
func Header() []string {
	h := []string{"id", "created_at", "company", "respondent", "email", "industry", "revenue_scale", "phase"}
	for i := 1; i <= diagnosis.NumQuestions; i++ {
		h = append(h, "q"+strconv.Itoa(i))
	}
	return append(h, "average", "memo")
}

// Write encodes subs to w in the given format.
func Write(w io.Writer, f Format, subs []*store.Submission) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, subs)
	default:
		return WriteCSV(w, subs)
	}
}

// WriteCSV writes a BOM-prefixed CSV document with one row per submission.
func WriteCSV(w io.Writer, subs []*store.Submission) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, s := range subs {
		if err := cw.Write(row(s)); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", s.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(s *store.Submission) []string {
	r := []string{
		s.ID,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.CompanyName,
		s.RespondentName,
		s.RespondentEmail,
		s.Industry,
		s.RevenueScale,
		s.BusinessPhase,
	}
	for _, v := range s.Scores {
		r = append(r, strconv.Itoa(v))
	}
	return append(r, diagnosis.FormatScore(s.AvgScore), s.Memo)
}

type record struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Company      string    `json:"company"`
	Respondent   string    `json:"respondent"`
	Email        string    `json:"email,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	RevenueScale string    `json:"revenue_scale,omitempty"`
	Phase        string    `json:"phase,omitempty"`
	Scores       []int     `json:"scores"`
	Average      float64   `json:"average"`
	Memo         string    `json:"memo,omitempty"`
}

func writeJSON(w io.Writer, subs []*store.Submission) error {
	out := make([]record, 0, len(subs))
	for _, s := range subs {
		avg, _ := strconv.ParseFloat(diagnosis.FormatScore(s.AvgScore), 64)
		out = append(out, record{
			ID:           s.ID,
			CreatedAt:    s.CreatedAt.UTC(),
			Company:      s.CompanyName,
			Respondent:   s.RespondentName,
			Email:        s.RespondentEmail,
			Industry:     s.Industry,
			RevenueScale: s.RevenueScale,
			Phase:        s.BusinessPhase,
			Scores:       s.Scores.Values(),
			Average:      avg,
			Memo:         s.Memo,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
