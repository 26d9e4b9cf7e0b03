package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyqa/internal/domain"
)

var studyQuestions = []string{
	"What is a deadlock?",
	"What is paging?",
	"What is normalization in DBMS?",
	"Explain inheritance in Python",
	"Why does thrashing happen in an operating system?",
	"Difference between process and thread",
}

func TestBuild_EmptyCorpus(t *testing.T) {
	ix, err := Build(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
	assert.Nil(t, ix)
}

func TestScore_Shape(t *testing.T) {
	ix, err := Build(studyQuestions)
	require.NoError(t, err)
	assert.Equal(t, len(studyQuestions), ix.Len())

	queries := []string{"what is deadlock", "process thread", "", "banana spaceship", "WHAT?? is!! paging"}
	for _, q := range queries {
		res := ix.Score(q)
		require.Len(t, res, len(studyQuestions), q)

		seen := make(map[int]bool)
		for i, m := range res {
			assert.GreaterOrEqual(t, m.Score, 0.0)
			assert.LessOrEqual(t, m.Score, 1.0)
			seen[m.Index] = true
			if i == 0 {
				continue
			}
			prev := res[i-1]
			assert.GreaterOrEqual(t, prev.Score, m.Score, q)
			if prev.Score == m.Score {
				assert.Less(t, prev.Index, m.Index, "ties by ascending index for %q", q)
			}
		}
		assert.Len(t, seen, len(studyQuestions))
	}
}

func TestScore_SelfMatch(t *testing.T) {
	ix, err := Build(studyQuestions)
	require.NoError(t, err)

	for i, q := range studyQuestions {
		best, ok := ix.Best(q)
		require.True(t, ok)
		assert.Equal(t, i, best.Index, q)
		assert.GreaterOrEqual(t, best.Score, 0.9, q)
	}
}

func TestScore_NoOverlap(t *testing.T) {
	ix, err := Build(studyQuestions)
	require.NoError(t, err)

	res := ix.Score("banana spaceship")
	for i, m := range res {
		assert.Zero(t, m.Score)
		assert.Equal(t, i, m.Index)
	}
}

func TestScore_DeadlockScenario(t *testing.T) {
	ix, err := Build([]string{"What is a deadlock?", "What is paging?"})
	require.NoError(t, err)

	best, ok := ix.Best("what is a deadlock")
	require.True(t, ok)
	assert.Equal(t, 0, best.Index)
	assert.InDelta(t, 1.0, best.Score, 1e-9)
}

func TestBuild_VocabularyFixed(t *testing.T) {
	ix, err := Build(studyQuestions)
	require.NoError(t, err)
	size := ix.VocabularySize()

	ix.Score("entirely unseen vocabulary words")
	assert.Equal(t, size, ix.VocabularySize())
}

func TestBuild_TokenlessCorpus(t *testing.T) {
	ix, err := Build([]string{"?", "a b"})
	require.NoError(t, err)
	assert.Zero(t, ix.VocabularySize())

	res := ix.Score("anything")
	require.Len(t, res, 2)
	assert.Zero(t, res[0].Score)
}
