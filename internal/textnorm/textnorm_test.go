package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lower cases", input: "What Is A DEADLOCK", expected: "what is a deadlock"},
		{name: "strips punctuation", input: "What is paging?!", expected: "what is paging"},
		{name: "keeps whitespace", input: "  a\tb\n", expected: "  a\tb\n"},
		{name: "empty", input: "", expected: ""},
		{name: "all punctuation", input: "!?.,;:", expected: ""},
		{name: "non ascii letters kept", input: "Café, Ünïcode", expected: "café ünïcode"},
		{name: "apostrophes removed", input: "Don't stop", expected: "dont stop"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"What is a Deadlock?",
		"  SQL -- JOIN (inner/outer) ",
		"C++ & Python_3.11",
		"",
		"\t\n",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"what", "is", "deadlock"}, Tokens("What is a deadlock?"))
	assert.Equal(t, []string{"cpu", "scheduling", "101"}, Tokens("CPU scheduling 101"))
	assert.Equal(t, []string{"cpuscheduling"}, Tokens("CPU-scheduling"))
	assert.Empty(t, Tokens(""))
	assert.Empty(t, Tokens("a b c ?"))
}
