package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/errs"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

func TestNewTypeRejectsUnsupportedInterface(t *testing.T) {
	supported, err := ifaces.NewSet(ifaces.Interface{Access: ifaces.Field, Kind: value.SFBool, ID: "on"})
	require.NoError(t, err)
	mt := &node.Metatype{TypeID: "urn:test:Switch", Supported: supported}

	reg := New(nil)
	reg.Register(mt)

	requested, err := ifaces.NewSet(ifaces.Interface{Access: ifaces.Field, Kind: value.SFBool, ID: "enabled"})
	require.NoError(t, err)

	_, err = reg.NewType("Switch", mt, requested)
	require.Error(t, err)
	var unsupported *errs.UnsupportedInterface
	assert.ErrorAs(t, err, &unsupported)
}

func TestNewTypeAcceptsSubsetOfSupported(t *testing.T) {
	supported, err := ifaces.NewSet(
		ifaces.Interface{Access: ifaces.Field, Kind: value.SFBool, ID: "on"},
		ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFFloat, ID: "speed"},
	)
	require.NoError(t, err)
	mt := &node.Metatype{TypeID: "urn:test:Switch", Supported: supported}

	reg := New(nil)
	reg.Register(mt)

	requested, err := ifaces.NewSet(ifaces.Interface{Access: ifaces.Field, Kind: value.SFBool, ID: "on"})
	require.NoError(t, err)

	nt, err := reg.NewType("Switch", mt, requested)
	require.NoError(t, err)
	assert.Equal(t, "Switch", nt.LocalID)
}

func TestLookupURLAlias(t *testing.T) {
	mt := &node.Metatype{TypeID: "urn:test:Widget"}
	reg := New(nil)
	reg.Register(mt)
	reg.RegisterAlias("http://example.com/widget.wrl", mt.TypeID)

	assert.Same(t, mt, reg.LookupURL("http://example.com/widget.wrl"))
	assert.Nil(t, reg.LookupURL("http://example.com/unknown.wrl"))
}

func TestShutdownClearsRegistry(t *testing.T) {
	mt := &node.Metatype{TypeID: "urn:test:Widget"}
	reg := New(nil)
	reg.Register(mt)
	reg.Shutdown(0)
	assert.Nil(t, reg.Lookup("urn:test:Widget"))
}
