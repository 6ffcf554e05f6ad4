package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// DesktopNotifier raises a desktop notification for each notice. On macOS
// it uses osascript, on Linux it tries notify-send. If neither is available,
// it falls back to writing a line to Fallback (stderr when nil).
type DesktopNotifier struct {
	Fallback io.Writer
}

// Notify implements Notifier.
func (d DesktopNotifier) Notify(ctx context.Context, n Notice) error {
	title := n.Subject
	msg := fmt.Sprintf("%s notice for %s", n.Kind, n.To)

	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`display notification %q with title "brandcheck" subtitle %q`, msg, title)
		if err := exec.CommandContext(ctx, "osascript", "-e", script).Run(); err == nil {
			return nil
		}
	case "linux":
		if _, err := exec.LookPath("notify-send"); err == nil {
			if err := exec.CommandContext(ctx, "notify-send", "brandcheck: "+title, msg).Run(); err == nil {
				return nil
			}
		}
	}
	return d.fallback(n)
}

func (d DesktopNotifier) fallback(n Notice) error {
	w := d.Fallback
	if w == nil {
		w = os.Stderr
	}
	_, err := fmt.Fprintf(w, "[%s] %s: %s\n", n.Kind, n.Subject, n.To)
	return err
}
