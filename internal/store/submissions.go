package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

// timeLayout is fixed-width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const submissionColumns = `id, created_at, company_name, respondent_name, respondent_email,
	industry, revenue_scale, business_phase, memo,
	q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11, q12,
	avg_score, edited_report, ai_report, ai_model, ai_generated_at`

// InsertSubmission stores a new submission. An empty ID is replaced with a
// fresh UUID and a zero CreatedAt with the current time; both are written
// back to s.
func (db *DB) InsertSubmission(s *Submission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	args := []any{
		s.ID, s.CreatedAt.UTC().Format(timeLayout), s.CompanyName, s.RespondentName,
		nullString(s.RespondentEmail), nullString(s.Industry), nullString(s.RevenueScale),
		nullString(s.BusinessPhase), nullString(s.Memo),
	}
	for _, v := range s.Scores {
		args = append(args, v)
	}
	args = append(args, s.AvgScore)

	_, err := db.conn.Exec(
		`INSERT INTO submissions
		(id, created_at, company_name, respondent_name, respondent_email,
		 industry, revenue_scale, business_phase, memo,
		 q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11, q12, avg_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

// GetSubmission returns the submission with the given id or ErrNotFound.
func (db *DB) GetSubmission(id string) (*Submission, error) {
	row := db.conn.QueryRow("SELECT "+submissionColumns+" FROM submissions WHERE id = ?", id)
	s, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading submission %s: %w", id, err)
	}
	return s, nil
}

// ListSubmissions returns matching submissions, newest first.
func (db *DB) ListSubmissions(f ListFilter) ([]*Submission, error) {
	var where []string
	var args []any
	if f.Company != "" {
		where = append(where, "company_name LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(f.Company)+"%")
	}
	if f.Phase != "" {
		where = append(where, "business_phase = ?")
		args = append(args, f.Phase)
	}
	if f.Industry != "" {
		where = append(where, "industry = ?")
		args = append(args, f.Industry)
	}

	q := "SELECT " + submissionColumns + " FROM submissions"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, rowid DESC"
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []*Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SetEditedReport stores a hand-edited report for a submission. A nil report
// clears the edit.
func (db *DB) SetEditedReport(id string, r *diagnosis.Report) error {
	val, err := encodeReport(r)
	if err != nil {
		return err
	}
	return db.update(id, "UPDATE submissions SET edited_report = ? WHERE id = ?", val, id)
}

// SetAIReport stores a generated report together with the model that
// produced it.
func (db *DB) SetAIReport(id string, r *diagnosis.Report, model string, at time.Time) error {
	val, err := encodeReport(r)
	if err != nil {
		return err
	}
	return db.update(id,
		"UPDATE submissions SET ai_report = ?, ai_model = ?, ai_generated_at = ? WHERE id = ?",
		val, nullString(model), at.UTC().Format(time.RFC3339), id)
}

// DeleteSubmission removes a submission and everything stored with it.
func (db *DB) DeleteSubmission(id string) error {
	return db.update(id, "DELETE FROM submissions WHERE id = ?", id)
}

func (db *DB) update(id, query string, args ...any) error {
	res, err := db.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("updating submission %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*Submission, error) {
	var s Submission
	var createdAt string
	var email, industry, revenue, phase, memo, edited, ai, aiModel, aiAt sql.NullString

	dest := []any{&s.ID, &createdAt, &s.CompanyName, &s.RespondentName, &email, &industry, &revenue, &phase, &memo}
	for i := range s.Scores {
		dest = append(dest, &s.Scores[i])
	}
	dest = append(dest, &s.AvgScore, &edited, &ai, &aiModel, &aiAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	var err error
	if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.RespondentEmail = email.String
	s.Industry = industry.String
	s.RevenueScale = revenue.String
	s.BusinessPhase = phase.String
	s.Memo = memo.String
	s.AIModel = aiModel.String

	if s.EditedReport, err = decodeReport(edited); err != nil {
		return nil, fmt.Errorf("decoding edited report: %w", err)
	}
	if s.AIReport, err = decodeReport(ai); err != nil {
		return nil, fmt.Errorf("decoding ai report: %w", err)
	}
	if aiAt.Valid {
		t, err := time.Parse(time.RFC3339, aiAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing ai_generated_at: %w", err)
		}
		s.AIGeneratedAt = &t
	}
	return &s, nil
}

func encodeReport(r *diagnosis.Report) (sql.NullString, error) {
	if r == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encoding report: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeReport(v sql.NullString) (*diagnosis.Report, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	var r diagnosis.Report
	if err := json.Unmarshal([]byte(v.String), &r); err != nil {
		return nil, err
	}
	r.Normalize()
	return &r, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
