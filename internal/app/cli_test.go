package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

// writeTestConfig points the CLI at a throwaway database and outbox.
func writeTestConfig(t *testing.T) (cfgPath, outbox string) {
	t.Helper()
	dir := t.TempDir()
	outbox = filepath.Join(dir, "outbox.jsonl")
	cfgPath = filepath.Join(dir, "config.yaml")
	body := "db_path: " + filepath.Join(dir, "bc.db") + "\n" +
		"log:\n  level: error\n" +
		"notify:\n  desktop: false\n  operator: ops@example.com\n  outbox: " + outbox + "\n" +
		"ai:\n  provider: mock\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	return cfgPath, outbox
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagJSON = false
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	out, err := execute(t, "analyze", "--json", "--scores", "5,5,5,5,5,5,5,5,5,5,5,5", "--phase", "成長中", "--memo", "")
	require.NoError(t, err)

	var r diagnosis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, diagnosis.RatingExcellent, r.OverallRating)
	assert.True(t, strings.HasPrefix(r.PhaseAdvice, "[Growth]"))
}

func TestAnalyzeCommand_InvalidScores(t *testing.T) {
	_, err := execute(t, "analyze", "--scores", "5,5,5", "--phase", "", "--memo", "")
	assert.ErrorIs(t, err, diagnosis.ErrInvalidScoreSet)
}

func TestSubmissionLifecycle(t *testing.T) {
	cfg, outbox := writeTestConfig(t)

	out, err := execute(t, "--config", cfg, "submit", "--json",
		"--company", "Acme", "--respondent", "Aoi", "--phase", "growth",
		"--scores", "2,2,5,3,3,3,3,3,3,3,3,3")
	require.NoError(t, err)
	var created struct {
		ID      string `json:"id"`
		Average string `json:"average"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "3.0", created.Average)

	data, err := os.ReadFile(outbox)
	require.NoError(t, err, "operator notice should be in the outbox")
	assert.Contains(t, string(data), "ops@example.com")

	out, err = execute(t, "--config", cfg, "list", "--json", "--company", "acme", "--phase", "", "--industry", "")
	require.NoError(t, err)
	var items []listItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.False(t, items[0].Edited)

	out, err = execute(t, "--config", cfg, "report", "show", "--json", created.ID)
	require.NoError(t, err)
	var computed diagnosis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &computed))
	assert.NotEmpty(t, computed.Contradictions)

	editPath := filepath.Join(t.TempDir(), "report.yaml")
	_, err = execute(t, "--config", cfg, "report", "edit", created.ID, "--out", editPath)
	require.NoError(t, err)
	doc, err := os.ReadFile(editPath)
	require.NoError(t, err)
	var draft diagnosis.Report
	require.NoError(t, yaml.Unmarshal(doc, &draft))
	assert.Equal(t, computed.OverallComment, draft.OverallComment)
	draft.OverallComment = "Reviewed. " + draft.OverallComment
	doc, err = yaml.Marshal(&draft)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(editPath, doc, 0o644))

	_, err = execute(t, "--config", cfg, "report", "save", created.ID, "--file", editPath)
	require.NoError(t, err)

	out, err = execute(t, "--config", cfg, "report", "show", "--json", created.ID)
	require.NoError(t, err)
	var shown diagnosis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.True(t, strings.HasPrefix(shown.OverallComment, "Reviewed. "), shown.OverallComment)

	_, err = execute(t, "--config", cfg, "report", "reset", created.ID)
	require.NoError(t, err)
	out, err = execute(t, "--config", cfg, "report", "show", "--json", created.ID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, computed.OverallComment, shown.OverallComment)

	csvPath := filepath.Join(t.TempDir(), "out.csv")
	_, err = execute(t, "--config", cfg, "export", "--out", csvPath, "--format", "csv", "--company", "", "--phase", "", "--industry", "")
	require.NoError(t, err)
	csv, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(csv), created.ID)

	_, err = execute(t, "--config", cfg, "delete", created.ID)
	require.NoError(t, err)
	_, err = execute(t, "--config", cfg, "report", "show", created.ID)
	assert.Error(t, err)
}
