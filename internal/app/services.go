package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/huvdesign/brandcheck/internal/config"
	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/logger"
	"github.com/huvdesign/brandcheck/internal/notify"
	"github.com/huvdesign/brandcheck/internal/store"
	"github.com/huvdesign/brandcheck/internal/survey"
)

// openService opens the submission store and wires the notice dispatcher.
// The returned func closes the store.
func openService(cfg *config.Config, log *logger.Logger) (*survey.Service, func(), error) {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	log.Debugf("using database %s", cfg.DBPath)

	svc := survey.NewService(db,
		survey.WithLogger(log),
		survey.WithDispatcher(newDispatcher(cfg.Notify)),
	)
	return svc, func() { _ = db.Close() }, nil
}

// newDispatcher builds the configured notifier chain.
func newDispatcher(cfg config.Notify) *notify.Dispatcher {
	var chain notify.Multi
	if cfg.Desktop {
		chain = append(chain, notify.DesktopNotifier{Fallback: os.Stderr})
	}
	if cfg.Outbox != "" {
		chain = append(chain, notify.NewOutboxNotifier(cfg.Outbox))
	}
	d := &notify.Dispatcher{
		Operator:   cfg.Operator,
		Respondent: cfg.Respondent,
		ResultURL:  cfg.ResultURL,
	}
	if len(chain) > 0 {
		d.Notifier = chain
	}
	return d
}

// parseScores parses "5,4,3,..." into a score list. Range and length are
// checked by the engine.
func parseScores(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("no scores given")
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid score %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseAnswers parses repeated "q3=4" flags into a question-number map.
func parseAnswers(pairs []string) (map[int]int, error) {
	answers := make(map[int]int, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want qN=score", pair)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(k)), "q"))
		if err != nil || n < 1 || n > diagnosis.NumQuestions {
			return nil, fmt.Errorf("invalid question %q: want q1..q%d", k, diagnosis.NumQuestions)
		}
		score, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid score in %q", pair)
		}
		answers[n] = score
	}
	return answers, nil
}
