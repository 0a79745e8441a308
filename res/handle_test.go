package res

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytesReadAll(t *testing.T) {
	h := FromBytes("inline:0", []byte("hello"))
	assert.Equal(t, "inline:0", h.URI())
	data, err := h.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestFromStreamUsesURIForDiagnosticsOnly(t *testing.T) {
	h := FromStream("", strings.NewReader("scene body"))
	assert.Equal(t, "", h.URI())
	data, err := h.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "scene body", string(data))
}

func TestOpenReadsFileAndSetsFileURI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.wrl")
	require.NoError(t, os.WriteFile(path, []byte("Group {}"), 0o644))

	h, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "file://"+path, h.URI())

	data, err := h.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Group {}", string(data))
}

func TestOpenMissingFileFails(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.wrl"))
	assert.Error(t, err)
}

func TestCloseOnBytesHandleIsNoop(t *testing.T) {
	h := FromBytes("inline:0", []byte("x"))
	assert.NoError(t, h.Close())
}
