package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyqa/internal/domain"
)

func TestLoad(t *testing.T) {
	csvData := "question,answer\n" +
		"What is a deadlock?,\"A deadlock is a state where processes wait forever.\"\n" +
		"\"What is paging?\",\"Paging divides memory into pages, frames.\"\n"

	entries, err := Load(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.Entry{
		Question: "What is a deadlock?",
		Answer:   "A deadlock is a state where processes wait forever.",
	}, entries[0])
	assert.Equal(t, "Paging divides memory into pages, frames.", entries[1].Answer)
	assert.Equal(t, []string{"What is a deadlock?", "What is paging?"}, Questions(entries))
}

func TestLoad_ColumnOrderAndExtras(t *testing.T) {
	csvData := "\ufeffid, Answer ,topic,QUESTION\n" +
		"1,Paging is a memory scheme.,os,What is paging?\n"

	entries, err := Load(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "What is paging?", entries[0].Question)
	assert.Equal(t, "Paging is a memory scheme.", entries[0].Answer)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty file", data: ""},
		{name: "missing answer column", data: "question,text\nq,a\n"},
		{name: "short row", data: "id,question,answer\n1,q\n"},
		{name: "bad quoting", data: "question,answer\n\"unterminated,a\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.data))
			assert.ErrorIs(t, err, domain.ErrInvalidDataset)
		})
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	entries, err := Load(strings.NewReader("question,answer\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.csv"))
		assert.ErrorIs(t, err, domain.ErrInvalidDataset)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "study.csv")
		require.NoError(t, os.WriteFile(path, []byte("question,answer\nWhat is SQL?,A query language.\n"), 0o644))
		entries, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
