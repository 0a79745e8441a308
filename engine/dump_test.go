package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/node"
)

func TestDumpSceneYAMLIncludesDefNamesAndFieldKinds(t *testing.T) {
	e, err := New(&noopViewer{})
	require.NoError(t, err)

	nt, ok := e.RootScope().FindType("Shape")
	require.True(t, ok)
	n, err := node.New(nt, nil, e.RootScope())
	require.NoError(t, err)
	e.RootScope().AddNode("MainShape", n)

	var buf bytes.Buffer
	require.NoError(t, e.DumpSceneYAML(&buf, []*node.Node{n}))

	out := buf.String()
	assert.Contains(t, out, "MainShape")
	assert.Contains(t, out, "urn:vscene:node:Shape")
	assert.Contains(t, out, "geometry")
}
