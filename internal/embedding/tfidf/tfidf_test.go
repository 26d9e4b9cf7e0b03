package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyqa/internal/domain"
)

func TestFit_EmptyCorpus(t *testing.T) {
	v, err := Fit(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
	assert.Nil(t, v)
}

func TestFit_Vocabulary(t *testing.T) {
	v, err := Fit([]string{"What is a deadlock?", "What is paging?"})
	require.NoError(t, err)

	assert.Equal(t, 4, v.Dimension())
	for _, term := range []string{"what", "is", "deadlock", "paging"} {
		assert.Contains(t, v.vocabulary, term)
	}
	assert.NotContains(t, v.vocabulary, "a", "single letters are not index terms")
}

func TestFit_SmoothedIDF(t *testing.T) {
	v, err := Fit([]string{"alpha beta", "alpha gamma"})
	require.NoError(t, err)

	alpha := v.vocabulary["alpha"]
	beta := v.vocabulary["beta"]
	assert.InDelta(t, 1.0, v.idf[alpha], 1e-12)
	assert.InDelta(t, math.Log(3.0/2.0)+1, v.idf[beta], 1e-12)
}

func TestTransform(t *testing.T) {
	v, err := Fit([]string{"alpha beta", "alpha gamma"})
	require.NoError(t, err)

	t.Run("unit length and sorted", func(t *testing.T) {
		vec := v.Transform("gamma alpha beta alpha")
		assert.InDelta(t, 1.0, vec.Norm(), 1e-12)
		for i := 1; i < len(vec); i++ {
			assert.Less(t, vec[i-1].Dim, vec[i].Dim)
		}
	})

	t.Run("unknown terms ignored", func(t *testing.T) {
		assert.Equal(t, v.Transform("alpha"), v.Transform("alpha zeta omega"))
	})

	t.Run("no known terms", func(t *testing.T) {
		assert.Empty(t, v.Transform("banana spaceship"))
		assert.Empty(t, v.Transform(""))
	})

	t.Run("vocabulary unchanged", func(t *testing.T) {
		before := v.Dimension()
		v.Transform("completely new words here")
		assert.Equal(t, before, v.Dimension())
		assert.NotContains(t, v.vocabulary, "completely")
	})
}

func TestVector_Dot(t *testing.T) {
	a := Vector{{Dim: 0, Weight: 1}, {Dim: 2, Weight: 2}, {Dim: 5, Weight: 3}}
	b := Vector{{Dim: 2, Weight: 4}, {Dim: 3, Weight: 1}, {Dim: 5, Weight: 1}}
	assert.InDelta(t, 11.0, a.Dot(b), 1e-12)
	assert.InDelta(t, 11.0, b.Dot(a), 1e-12)
	assert.Zero(t, a.Dot(nil))
}
