package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/config"
	"github.com/huvdesign/brandcheck/internal/output"
	"github.com/huvdesign/brandcheck/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the brandcheck setup is healthy",
	Long: `Run a series of health checks against your brandcheck configuration:
config file, database, notification outbox, desktop notifications and the
AI provider key. Prints a pass/fail line for each check and a summary.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	checks := []doctorCheck{
		checkConfigFile(flagConfig),
		checkDatabase(cfg.DBPath),
		checkOutbox(cfg.Notify),
		checkDesktop(cfg.Notify),
		checkAPIKey(cfg.AI),
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return output.WriteJSON(w, doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		})
	}

	fmt.Fprintln(w, output.Section("Doctor"))
	fmt.Fprintln(w)
	for _, c := range checks {
		indicator := output.StyleSuccess.Render("✓")
		if !c.Passed {
			indicator = output.StyleWarning.Render("✗")
		}
		fmt.Fprintf(w, "  %s  %-30s %s\n", indicator, output.StyleBold.Render(c.Name), output.StyleMuted.Render(c.Message))
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Fprintf(w, " %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Fprintf(w, " %s\n\n", output.StyleWarning.Render(summary))
	}
	return nil
}

// checkConfigFile reports which config file is in effect. A missing file is
// fine; defaults apply.
func checkConfigFile(flagPath string) doctorCheck {
	path := flagPath
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "config.yaml")
	}
	if _, err := os.Stat(path); err != nil {
		return doctorCheck{Name: "Config file", Passed: true, Message: fmt.Sprintf("not found, using defaults (%s)", path)}
	}
	return doctorCheck{Name: "Config file", Passed: true, Message: path}
}

// checkDatabase opens the database, which also applies pending migrations.
func checkDatabase(dbPath string) doctorCheck {
	db, err := store.Open(dbPath)
	if err != nil {
		return doctorCheck{Name: "SQLite database", Passed: false, Message: err.Error()}
	}
	defer func() { _ = db.Close() }()

	v, err := db.SchemaVersion()
	if err != nil {
		return doctorCheck{Name: "SQLite database", Passed: false, Message: fmt.Sprintf("reading schema version: %v", err)}
	}
	return doctorCheck{Name: "SQLite database", Passed: true, Message: fmt.Sprintf("%s (schema v%d)", dbPath, v)}
}

// checkOutbox verifies the outbox directory is writable.
func checkOutbox(n config.Notify) doctorCheck {
	if n.Outbox == "" {
		return doctorCheck{Name: "Notification outbox", Passed: true, Message: "disabled"}
	}
	dir := filepath.Dir(n.Outbox)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return doctorCheck{Name: "Notification outbox", Passed: false, Message: err.Error()}
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return doctorCheck{Name: "Notification outbox", Passed: false, Message: fmt.Sprintf("%s is not writable", dir)}
	}
	_ = f.Close()
	_ = os.Remove(f.Name())

	msg := n.Outbox
	if n.Operator == "" {
		msg += " (no operator configured)"
	}
	return doctorCheck{Name: "Notification outbox", Passed: true, Message: msg}
}

// checkDesktop looks for the desktop notification helper of this platform.
func checkDesktop(n config.Notify) doctorCheck {
	if !n.Desktop {
		return doctorCheck{Name: "Desktop notifications", Passed: true, Message: "disabled"}
	}
	var tool string
	switch runtime.GOOS {
	case "darwin":
		tool = "osascript"
	case "linux":
		tool = "notify-send"
	default:
		return doctorCheck{Name: "Desktop notifications", Passed: true, Message: "unsupported platform, notices go to stderr"}
	}
	if _, err := exec.LookPath(tool); err != nil {
		return doctorCheck{Name: "Desktop notifications", Passed: false, Message: tool + " not found, notices go to stderr"}
	}
	return doctorCheck{Name: "Desktop notifications", Passed: true, Message: tool}
}

// checkAPIKey verifies that the configured provider has a key.
func checkAPIKey(ai config.AI) doctorCheck {
	name := fmt.Sprintf("AI provider (%s)", ai.Provider)
	env, ok := config.APIKeyEnv[ai.Provider]
	if !ok {
		if ai.Provider == "mock" {
			return doctorCheck{Name: name, Passed: true, Message: "no key needed"}
		}
		return doctorCheck{Name: name, Passed: false, Message: "unknown provider"}
	}
	val, err := ai.APIKey()
	if err != nil {
		return doctorCheck{Name: name, Passed: false, Message: fmt.Sprintf("%s is not set (needed for 'ai')", env)}
	}
	// Show only the first few characters.
	masked := val[:min(8, len(val))] + "..."
	return doctorCheck{Name: name, Passed: true, Message: fmt.Sprintf("%s set (%s), model %s", env, masked, ai.ModelName())}
}
