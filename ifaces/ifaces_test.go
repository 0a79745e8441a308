package ifaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/value"
)

func TestExposedFieldAliasResolution(t *testing.T) {
	set, err := NewSet(
		Interface{Access: ExposedField, Kind: value.SFVec3f, ID: "translation"},
		Interface{Access: EventIn, ID: "addChildren", Kind: value.MFNode},
	)
	require.NoError(t, err)

	iface, ok := set.Find(EventIn, "set_translation")
	require.True(t, ok)
	assert.Equal(t, "translation", iface.ID)

	iface, ok = set.Find(EventOut, "translation_changed")
	require.True(t, ok)
	assert.Equal(t, "translation", iface.ID)

	_, ok = set.Find(EventOut, "addChildren_changed")
	assert.False(t, ok)
}

func TestSetOrderedByID(t *testing.T) {
	set, err := NewSet(
		Interface{Access: Field, Kind: value.SFBool, ID: "zebra"},
		Interface{Access: Field, Kind: value.SFBool, ID: "alpha"},
	)
	require.NoError(t, err)
	all := set.All()
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].ID)
	assert.Equal(t, "zebra", all[1].ID)
}

func TestDuplicateIDRejected(t *testing.T) {
	_, err := NewSet(
		Interface{Access: Field, Kind: value.SFBool, ID: "on"},
		Interface{Access: Field, Kind: value.SFBool, ID: "on"},
	)
	assert.Error(t, err)
}

func TestStorageID(t *testing.T) {
	set, err := NewSet(
		Interface{Access: ExposedField, Kind: value.SFFloat, ID: "intensity"},
	)
	require.NoError(t, err)

	id, ok := set.StorageID("set_intensity")
	require.True(t, ok)
	assert.Equal(t, "intensity", id)

	id, ok = set.StorageID("intensity_changed")
	require.True(t, ok)
	assert.Equal(t, "intensity", id)
}
