package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRelative(t *testing.T) {
	out, err := Resolve("http://example.com/scenes/a.wrl", "", "textures/wood.png")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/scenes/textures/wood.png", out)
}

func TestResolveAnonymousFallsBackToWorldURL(t *testing.T) {
	out, err := Resolve(AnonymousPrefix, "http://example.com/scenes/a.wrl", "b.wrl")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/scenes/b.wrl", out)
}

func TestResolveAnonymousWithNoWorldURLFallsBackToFile(t *testing.T) {
	out, err := Resolve(AnonymousPrefix, "", "b.wrl")
	require.NoError(t, err)
	assert.Equal(t, "file:///b.wrl", out)
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, IsAbsolute("http://example.com/x.wrl"))
	assert.False(t, IsAbsolute("relative/path.wrl"))
}
