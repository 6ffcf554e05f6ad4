package notify

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Dispatcher sends the notices for a submission.
type Dispatcher struct {
	Notifier Notifier
	// Operator receives every submission notice; empty disables it.
	Operator string
	// Respondent enables the respondent notice for submissions that carry an
	// email address.
	Respondent bool
	ResultURL  string
}

// Notices returns the notices Dispatch would send for s.
func (d *Dispatcher) Notices(s Summary) []Notice {
	var out []Notice
	if d.Operator != "" {
		out = append(out, OperatorNotice(s, d.Operator, d.ResultURL))
	}
	if d.Respondent && s.Email != "" {
		out = append(out, RespondentNotice(s, d.ResultURL))
	}
	return out
}

// Dispatch sends all notices concurrently. Every notice is attempted; the
// first error is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, s Summary) error {
	if d.Notifier == nil {
		return nil
	}
	var g errgroup.Group
	for _, n := range d.Notices(s) {
		g.Go(func() error {
			if err := d.Notifier.Notify(ctx, n); err != nil {
				return fmt.Errorf("sending %s notice to %s: %w", n.Kind, n.To, err)
			}
			return nil
		})
	}
	return g.Wait()
}
