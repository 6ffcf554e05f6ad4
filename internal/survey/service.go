// Package survey implements submission handling on top of the diagnosis
// engine: storing answers, notifying people, and resolving which report a
// submission currently has.
package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/logger"
	"github.com/huvdesign/brandcheck/internal/notify"
	"github.com/huvdesign/brandcheck/internal/store"
)

// ErrInvalidSubmission is returned for submissions missing required
// metadata. Score problems are reported as diagnosis.ErrInvalidScoreSet.
var ErrInvalidSubmission = errors.New("invalid submission")

// ErrNoAIReport is returned when a submission has no stored AI report.
var ErrNoAIReport = errors.New("no AI report stored")

// NewSubmission is a survey response as entered by the respondent.
type NewSubmission struct {
	CompanyName     string
	RespondentName  string
	RespondentEmail string
	Industry        string
	RevenueScale    string
	BusinessPhase   string
	Memo            string
	Scores          []int
}

// Source says where a resolved report came from.
type Source string

const (
	SourceEdited   Source = "edited"
	SourceComputed Source = "computed"
)

// Resolved is a submission together with the report currently shown for it.
type Resolved struct {
	Submission *store.Submission
	Report     *diagnosis.Report
	Source     Source
}

// Dispatcher sends submission notices.
type Dispatcher interface {
	Dispatch(ctx context.Context, s notify.Summary) error
}

// Service handles submissions.
type Service struct {
	db         *store.DB
	engine     *diagnosis.Engine
	dispatcher Dispatcher
	log        *logger.Logger
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithEngine replaces the standard engine.
func WithEngine(e *diagnosis.Engine) Option { return func(s *Service) { s.engine = e } }

// WithDispatcher sets the notice dispatcher. Without one no notices are sent.
func WithDispatcher(d Dispatcher) Option { return func(s *Service) { s.dispatcher = d } }

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option { return func(s *Service) { s.log = l } }

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// NewService creates a Service backed by db.
func NewService(db *store.DB, opts ...Option) *Service {
	s := &Service{
		db:     db,
		engine: diagnosis.NewEngine(),
		log:    logger.Discard(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ScoresFromAnswers turns a question-number to score map into the ordered
// score list. Unanswered questions default to the minimum score.
func ScoresFromAnswers(answers map[int]int) []int {
	out := make([]int, diagnosis.NumQuestions)
	for i := range out {
		v, ok := answers[i+1]
		if !ok {
			v = diagnosis.MinScore
		}
		out[i] = v
	}
	return out
}

// NormalizePhase stores recognized phases under their canonical name and
// keeps anything else as entered.
func NormalizePhase(raw string) string {
	if p := diagnosis.ParsePhase(raw); p != diagnosis.PhaseUnknown {
		return p.String()
	}
	return strings.TrimSpace(raw)
}

// Submit validates and stores a submission, then dispatches notices.
// Notice failures are logged and never fail the submission.
func (s *Service) Submit(ctx context.Context, in NewSubmission) (*store.Submission, error) {
	company := strings.TrimSpace(in.CompanyName)
	respondent := strings.TrimSpace(in.RespondentName)
	if company == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrInvalidSubmission)
	}
	if respondent == "" {
		return nil, fmt.Errorf("%w: respondent name is required", ErrInvalidSubmission)
	}

	scores, err := diagnosis.NewScoreSet(in.Scores)
	if err != nil {
		return nil, err
	}

	sub := &store.Submission{
		CreatedAt:       s.now().UTC(),
		CompanyName:     company,
		RespondentName:  respondent,
		RespondentEmail: strings.TrimSpace(in.RespondentEmail),
		Industry:        strings.TrimSpace(in.Industry),
		RevenueScale:    strings.TrimSpace(in.RevenueScale),
		BusinessPhase:   NormalizePhase(in.BusinessPhase),
		Memo:            in.Memo,
		Scores:          scores,
		AvgScore:        diagnosis.Aggregate(scores).Overall,
	}
	if err := s.db.InsertSubmission(sub); err != nil {
		return nil, err
	}
	s.log.Infof("stored submission %s from %s (avg %s)", sub.ID, sub.CompanyName, diagnosis.FormatScore(sub.AvgScore))

	if s.dispatcher != nil {
		if err := s.dispatcher.Dispatch(ctx, SummaryOf(sub)); err != nil {
			s.log.Warnf("notifying about submission %s: %v", sub.ID, err)
		}
	}
	return sub, nil
}

// SummaryOf extracts the notice summary of a stored submission.
func SummaryOf(sub *store.Submission) notify.Summary {
	return notify.Summary{
		SubmissionID: sub.ID,
		Company:      sub.CompanyName,
		Respondent:   sub.RespondentName,
		Email:        sub.RespondentEmail,
		Industry:     sub.Industry,
		RevenueScale: sub.RevenueScale,
		Phase:        sub.BusinessPhase,
		AvgScore:     sub.AvgScore,
		Scores:       sub.Scores,
		CreatedAt:    sub.CreatedAt,
	}
}

// Get returns a stored submission.
func (s *Service) Get(id string) (*store.Submission, error) {
	return s.db.GetSubmission(id)
}

// Report resolves the report of a submission: a stored hand-edited report
// wins, otherwise the report is recomputed from the stored answers.
func (s *Service) Report(id string) (*Resolved, error) {
	sub, err := s.db.GetSubmission(id)
	if err != nil {
		return nil, err
	}
	if sub.EditedReport != nil {
		return &Resolved{Submission: sub, Report: sub.EditedReport, Source: SourceEdited}, nil
	}
	r, err := s.Compute(sub)
	if err != nil {
		return nil, err
	}
	return &Resolved{Submission: sub, Report: r, Source: SourceComputed}, nil
}

// Compute runs the engine on a stored submission, ignoring any edit.
func (s *Service) Compute(sub *store.Submission) (*diagnosis.Report, error) {
	r, err := s.engine.Analyze(diagnosis.Input{
		Scores: sub.Scores.Values(),
		Phase:  sub.BusinessPhase,
		Memo:   sub.Memo,
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing submission %s: %w", sub.ID, err)
	}
	return r, nil
}

// SaveEditedReport stores a hand-edited report that replaces the computed
// one on later reads.
func (s *Service) SaveEditedReport(id string, r *diagnosis.Report) error {
	if r == nil {
		return fmt.Errorf("%w: empty report", ErrInvalidSubmission)
	}
	if !r.OverallRating.Valid() {
		return fmt.Errorf("%w: unknown rating %q", ErrInvalidSubmission, r.OverallRating)
	}
	r.Normalize()
	if err := s.db.SetEditedReport(id, r); err != nil {
		return err
	}
	s.log.Infof("saved edited report for %s", id)
	return nil
}

// ResetReport drops the hand-edited report so the computed one is shown
// again.
func (s *Service) ResetReport(id string) error {
	if err := s.db.SetEditedReport(id, nil); err != nil {
		return err
	}
	s.log.Infof("reset report for %s", id)
	return nil
}

// SaveAIReport stores a generated report for a submission.
func (s *Service) SaveAIReport(id string, r *diagnosis.Report, model string) error {
	if r == nil {
		return fmt.Errorf("%w: empty report", ErrInvalidSubmission)
	}
	r.Normalize()
	return s.db.SetAIReport(id, r, model, s.now())
}

// AIReport returns the stored AI report of a submission.
func (s *Service) AIReport(id string) (*diagnosis.Report, error) {
	sub, err := s.db.GetSubmission(id)
	if err != nil {
		return nil, err
	}
	if sub.AIReport == nil {
		return nil, ErrNoAIReport
	}
	return sub.AIReport, nil
}

// ListFilter narrows List.
type ListFilter struct {
	Company  string
	Phase    string
	Industry string
	Limit    int
}

// List returns matching submissions, newest first. Phase filters accept the
// same spellings as submissions do.
func (s *Service) List(f ListFilter) ([]*store.Submission, error) {
	phase := f.Phase
	if phase != "" {
		phase = NormalizePhase(phase)
	}
	return s.db.ListSubmissions(store.ListFilter{
		Company:  strings.TrimSpace(f.Company),
		Phase:    phase,
		Industry: strings.TrimSpace(f.Industry),
		Limit:    f.Limit,
	})
}

// Delete removes a submission.
func (s *Service) Delete(id string) error {
	if err := s.db.DeleteSubmission(id); err != nil {
		return err
	}
	s.log.Infof("deleted submission %s", id)
	return nil
}
