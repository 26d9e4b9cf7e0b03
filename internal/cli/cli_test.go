package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyqa/internal/emoji"
	"studyqa/internal/service"
)

const testCSV = `question,answer
What is a deadlock?,A deadlock is a state where each process waits for a resource held by another.
What is SQL?,SQL is a language for querying relational databases.
`

func setupConfig(t *testing.T, documents string) string {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "study.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0o644))

	cfgPath := filepath.Join(dir, "studyqa.yaml")
	content := fmt.Sprintf("dataset:\n  path: %q\ndocuments: %s\n", csvPath, documents)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return cfgPath
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand("1.2.3", "abc123", "2024-01-01")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand("dev", "none", "unknown")
	for _, name := range []string{"ask", "chat", "sources", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "verbose", "no-emoji", "dataset", "policy"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestAsk_PrintsComposedAnswer(t *testing.T) {
	cfg := setupConfig(t, "[]")

	out, _, err := execute(t, "ask", "--config", cfg, "what", "is", "a", "deadlock")
	require.NoError(t, err)
	assert.Contains(t, out, "[Operating Systems] · Study Dataset")
	assert.Contains(t, out, "A deadlock is a state where each process waits")
}

func TestAsk_JSON(t *testing.T) {
	cfg := setupConfig(t, "[]")

	out, _, err := execute(t, "ask", "--config", cfg, "--json", "what is sql")
	require.NoError(t, err)

	var ans service.Answer
	require.NoError(t, json.Unmarshal([]byte(out), &ans))
	assert.Equal(t, "what is sql", ans.Query)
	assert.True(t, ans.Outcome.Matched)
	assert.Equal(t, "Study Dataset", ans.Outcome.Source)
	assert.Equal(t, "DBMS", ans.Meta.Subject)
	require.Len(t, ans.Candidates, 1)
}

func TestAsk_NoEmoji(t *testing.T) {
	cfg := setupConfig(t, "[]")

	out, _, err := execute(t, "ask", "--config", cfg, "--no-emoji", "banana spaceship")
	require.NoError(t, err)
	assert.True(t, emoji.IsDisabled())
	assert.Contains(t, out, "I'm not confident about this question yet [?].")
}

func TestAsk_RequiresQuestion(t *testing.T) {
	_, _, err := execute(t, "ask")
	assert.Error(t, err)
}

func TestAsk_PolicyFlagValidated(t *testing.T) {
	cfg := setupConfig(t, "[]")

	_, _, err := execute(t, "ask", "--config", cfg, "--policy", "vote", "what is sql")
	assert.Error(t, err)
}

func TestAsk_MissingDatasetFails(t *testing.T) {
	cfg := setupConfig(t, "[]")

	_, _, err := execute(t, "ask", "--config", cfg, "--dataset", filepath.Join(t.TempDir(), "absent.csv"), "what is sql")
	assert.Error(t, err)
}

func TestSources_ReportsDisabledDocument(t *testing.T) {
	cfg := setupConfig(t, `[{label: "OS Notes", path: "missing-notes.txt", subject: "Operating Systems"}]`)

	out, errOut, err := execute(t, "sources", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Policy: subject_override")
	assert.Contains(t, out, "Study Dataset")
	assert.Contains(t, out, "OS Notes")
	assert.Contains(t, out, "disabled: no text extracted")
	assert.Contains(t, errOut, "Source disabled")
}

func TestSources_JSON(t *testing.T) {
	cfg := setupConfig(t, "[]")

	out, _, err := execute(t, "sources", "--config", cfg, "--json")
	require.NoError(t, err)

	var sources []service.SourceInfo
	require.NoError(t, json.Unmarshal([]byte(out), &sources))
	require.Len(t, sources, 1)
	assert.True(t, sources[0].Enabled)
	assert.Equal(t, 2, sources[0].Size)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "studyqa 1.2.3 (abc123) built on 2024-01-01")
	assert.Contains(t, out, "Go version:")
}

func TestSourcesSummary(t *testing.T) {
	got := sourcesSummary([]service.SourceInfo{
		{Label: "Study Dataset", Enabled: true, Size: 3},
		{Label: "Notes"},
	})
	assert.Equal(t, "Study Dataset (3) · Notes (off)", got)
}
