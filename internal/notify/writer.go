package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// WriterNotifier prints notices as plain text, one block per notice.
type WriterNotifier struct {
	mu sync.Mutex
	W  io.Writer
}

// NewWriterNotifier creates a WriterNotifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{W: w}
}

// Notify implements Notifier.
func (w *WriterNotifier) Notify(_ context.Context, n Notice) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintf(w.W, "To: %s\nSubject: %s\n\n%s\n\n", n.To, n.Subject, n.Body)
	return err
}
