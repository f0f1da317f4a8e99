package lock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests the compiled format cache.
func TestCodeFormatCache(t *testing.T) {
	format := codeFormat{}

	first, err := format.compile(`^\d{4}$`)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := format.compile(`^\d{4}$`)
	require.NoError(t, err)
	assert.True(t, first == second, "same pattern reuses the matcher")

	third, err := format.compile(`^\d{6}$`)
	require.NoError(t, err)
	assert.True(t, first != third, "new pattern recompiles")

	cleared, err := format.compile("")
	require.NoError(t, err)
	assert.Nil(t, cleared, "empty pattern clears the cache")

	_, err = format.compile(`(\d`)
	assert.Error(t, err, "broken pattern")
}

// Tests that matching is anchored at the start only.
func TestCodeFormatAnchoring(t *testing.T) {
	format := codeFormat{}
	matcher, err := format.compile(`\d+`)
	require.NoError(t, err)

	assert.True(t, matcher.MatchString("12ab"), "prefix match is enough")
	assert.False(t, matcher.MatchString("ab12"), "match must start at the beginning")

	matcher, err = format.compile(`^\d{4}$`)
	require.NoError(t, err)
	assert.True(t, matcher.MatchString("1234"))
	assert.False(t, matcher.MatchString("12345"), "pattern's own anchors are honored")
}
