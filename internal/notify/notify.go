// Package notify delivers notices about new survey submissions to the
// operator and, when an address was given, to the respondent.
package notify

import (
	"context"
	"errors"
	"time"
)

// Kind identifies who a notice is meant for.
type Kind string

const (
	KindOperator   Kind = "operator"
	KindRespondent Kind = "respondent"
)

// Notice is one outgoing message. Body is markdown.
type Notice struct {
	Kind      Kind      `json:"kind"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier delivers notices.
type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

// Multi delivers each notice to every notifier and joins their errors.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, n Notice) error {
	var errs []error
	for _, nt := range m {
		if err := nt.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
