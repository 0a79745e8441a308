package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quadroom/vscene/bounds"
)

func TestDefaultIntersectViewVolumeDelegatesToVolume(t *testing.T) {
	got := DefaultIntersectViewVolume(bounds.Max(), nil)
	assert.Equal(t, bounds.Partial, got, "the max sentinel volume always reports Partial regardless of frustum")
}
