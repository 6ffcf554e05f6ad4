package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/yuin/goldmark"
)

const lockRetryDelay = 50 * time.Millisecond

// outboxEntry is one line of the outbox file.
type outboxEntry struct {
	Notice
	HTML string `json:"html"`
}

// OutboxNotifier appends notices, with the body rendered to HTML, as JSON
// lines to a file that a mail relay picks up. Appends from concurrent
// processes are serialized with a lock file next to the outbox.
type OutboxNotifier struct {
	// mu serializes goroutines; a held flock is reentrant within a process.
	mu   sync.Mutex
	path string
	lock *flock.Flock
	md   goldmark.Markdown
}

// NewOutboxNotifier creates an outbox at path. The file and its directory are
// created on first use.
func NewOutboxNotifier(path string) *OutboxNotifier {
	return &OutboxNotifier{
		path: path,
		lock: flock.New(path + ".lock"),
		md:   goldmark.New(),
	}
}

// Path returns the outbox file path.
func (o *OutboxNotifier) Path() string { return o.path }

// Notify implements Notifier.
func (o *OutboxNotifier) Notify(ctx context.Context, n Notice) error {
	var html bytes.Buffer
	if err := o.md.Convert([]byte(n.Body), &html); err != nil {
		return fmt.Errorf("rendering notice body: %w", err)
	}
	line, err := json.Marshal(outboxEntry{Notice: n, HTML: html.String()})
	if err != nil {
		return fmt.Errorf("encoding notice: %w", err)
	}
	line = append(line, '\n')

	if err := os.MkdirAll(filepath.Dir(o.path), 0o755); err != nil {
		return fmt.Errorf("creating outbox directory: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("locking outbox %s: %w", o.path, err)
	}
	defer func() { _ = o.lock.Unlock() }()

	f, err := os.OpenFile(o.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening outbox: %w", err)
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing outbox: %w", err)
	}
	return f.Close()
}
