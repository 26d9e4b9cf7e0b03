package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	defer SetDisabled(false)

	SetDisabled(false)
	assert.Equal(t, "📘", Get("definition"))
	assert.Equal(t, "[?]", Get("missing"))

	SetDisabled(true)
	assert.True(t, IsDisabled())
	assert.Equal(t, "[DEF]", Get("definition"))
	assert.Equal(t, "[?]", Get("unsure"))
}
