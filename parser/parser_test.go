package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/bounds"
	"github.com/quadroom/vscene/engine"
	"github.com/quadroom/vscene/errs"
	"github.com/quadroom/vscene/math32"
	"github.com/quadroom/vscene/profile"
	"github.com/quadroom/vscene/sim"
	"github.com/quadroom/vscene/value"
	"github.com/quadroom/vscene/viewer"
)

// noopViewer is a minimal viewer.Viewer satisfied entirely with no-ops,
// enough to construct an engine.Engine for parse/load/update round trips.
type noopViewer struct{ mode viewer.Mode }

func (v *noopViewer) BeginFrame() {}
func (v *noopViewer) EndFrame()   {}

func (v *noopViewer) InsertBox(math32.Vector3) viewer.Object         { return nil }
func (v *noopViewer) InsertCone(float32, float32) viewer.Object      { return nil }
func (v *noopViewer) InsertCylinder(float32, float32) viewer.Object  { return nil }
func (v *noopViewer) InsertSphere(float32) viewer.Object             { return nil }
func (v *noopViewer) InsertGeometry(*viewer.Geometry) viewer.Object  { return nil }
func (v *noopViewer) InsertLineSet(*viewer.Geometry) viewer.Object   { return nil }
func (v *noopViewer) InsertPointSet(*viewer.Geometry) viewer.Object  { return nil }
func (v *noopViewer) InsertShell(*viewer.Geometry) viewer.Object     { return nil }
func (v *noopViewer) InsertLight(*viewer.Light) viewer.Object        { return nil }
func (v *noopViewer) InsertBackground([]math32.Color, []viewer.Texture) viewer.Object {
	return nil
}
func (v *noopViewer) InsertTexture(*viewer.Texture) viewer.Object { return nil }
func (v *noopViewer) InsertTextureTransform(math32.Vector2, math32.Vector2, float32) viewer.Object {
	return nil
}
func (v *noopViewer) InsertReference(viewer.Object) {}
func (v *noopViewer) Transform(*math32.Matrix4)     {}
func (v *noopViewer) SetViewpoint(math32.Vector3, viewer.Orientation, float32, [3]float32, bool) {
}
func (v *noopViewer) SetFog(math32.Color, float32, string) {}
func (v *noopViewer) SetFrustum(*bounds.Frustum)            {}
func (v *noopViewer) SetSensitive(viewer.Object)            {}
func (v *noopViewer) Mode() viewer.Mode                     { return v.mode }
func (v *noopViewer) SetMode(m viewer.Mode)                 { v.mode = m }

func newTestEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	eng, err := engine.New(&noopViewer{}, opts...)
	require.NoError(t, err)
	return eng
}

// Scenario 1 (spec.md §8): Group{children [Shape{geometry Box{size 2 2 2}}]}
// parses into one Group whose single child is a Shape whose geometry is a
// Box with size (2,2,2).
func TestParseGroupShapeBox(t *testing.T) {
	eng := newTestEngine(t)
	src := `#VRML V2.0 utf8
Group { children [ Shape { geometry Box { size 2 2 2 } } ] }
`
	doc, warnings, err := Parse(strings.NewReader(src), "test:group.wrl", "model/vrml", eng)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, doc.Roots, 1)

	group := doc.Roots[0]
	assert.Equal(t, "Group", group.Type().LocalID)

	children := group.ChildNodes()
	require.Len(t, children, 1)
	shape := children[0]
	assert.Equal(t, "Shape", shape.Type().LocalID)

	geomChildren := shape.ChildNodes()
	require.Len(t, geomChildren, 1)
	box := geomChildren[0]
	assert.Equal(t, "Box", box.Type().LocalID)

	sizeVal, ok := box.Get("size")
	require.True(t, ok)
	size, ok := sizeVal.Vec3f()
	require.True(t, ok)
	assert.Equal(t, math32.Vector3{X: 2, Y: 2, Z: 2}, size)
}

// Scenario 2 (spec.md §8): a TimeSensor driving a PositionInterpolator
// driving a Transform's translation through ROUTE statements.
func TestParseTimeSensorInterpolatorRouteChain(t *testing.T) {
	eng := newTestEngine(t)
	src := `
DEF TS TimeSensor { cycleInterval 2 loop TRUE }
DEF PI PositionInterpolator {
    key [0, 0.5, 1]
    keyValue [0 0 0, 1 0 0, 0 0 0]
}
DEF TR Transform { children [ Shape { geometry Box { size 1 1 1 } } ] }
ROUTE TS.fraction_changed TO PI.set_fraction
ROUTE PI.value_changed TO TR.set_translation
`
	doc, _, err := Parse(strings.NewReader(src), "test:chain.wrl", "model/vrml", eng)
	require.NoError(t, err)
	require.NoError(t, eng.Load(doc))

	tr := doc.Roots[2]

	eng.Update(0.0)
	eng.Update(0.5)
	v, ok := tr.Get("translation")
	require.True(t, ok)
	got, _ := v.Vec3f()
	assert.InDelta(t, 1, got.X, 1e-5)
	assert.InDelta(t, 0, got.Y, 1e-5)
	assert.InDelta(t, 0, got.Z, 1e-5)

	eng.Update(1.0)
	v, ok = tr.Get("translation")
	require.True(t, ok)
	got, _ = v.Vec3f()
	assert.InDelta(t, 0, got.X, 1e-5)
	assert.InDelta(t, 0, got.Y, 1e-5)
	assert.InDelta(t, 0, got.Z, 1e-5)
}

// Scenario 4 (spec.md §8): a ROUTE referencing an un-DEF'd node fails with
// InvalidScene carrying a precise line/column for the unresolved name.
func TestParseRouteToUndefinedNameFails(t *testing.T) {
	eng := newTestEngine(t)
	src := `Viewpoint { position 0 0 10 }
ROUTE vp.bindTime TO nowhere.set_bind
`
	_, _, err := Parse(strings.NewReader(src), "test:badroute.wrl", "model/vrml", eng)
	require.Error(t, err)
	var invalid *errs.InvalidScene
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 2, invalid.Line)
}

// DEF/USE: a USE reference resolves to the same shared node, not a copy.
func TestDefUseSharesTheSameNode(t *testing.T) {
	eng := newTestEngine(t)
	src := `
Group {
  children [
    DEF BOX Shape { geometry Box { size 1 1 1 } }
    USE BOX
  ]
}
`
	doc, _, err := Parse(strings.NewReader(src), "test:defuse.wrl", "model/vrml", eng)
	require.NoError(t, err)
	children := doc.Roots[0].ChildNodes()
	require.Len(t, children, 2)
	assert.Same(t, children[0], children[1])
}

// PROTO (spec.md §8): an interface IS-mapped into a contained Transform's
// translation field; constructing an instance applies the caller's value
// through the mapping, and sending an event to the instance's event-in is
// observed on the Transform's corresponding event-in.
func TestParsePROTOWithISMappedTranslation(t *testing.T) {
	eng := newTestEngine(t)
	src := `
PROTO Widget [ exposedField SFVec3f position 0 0 0 ] {
  Transform {
    translation IS position
    children [ Shape { geometry Box { size 1 1 1 } } ]
  }
}
DEF W Widget { position 1 2 3 }
`
	doc, _, err := Parse(strings.NewReader(src), "test:proto.wrl", "model/vrml", eng)
	require.NoError(t, err)
	require.Len(t, doc.Roots, 1)
	inst := doc.Roots[0]

	routed := eng.Routes().FromSource(inst)
	require.NotEmpty(t, routed)
	var translation *math32.Vector3
	for _, r := range routed {
		if r.DstID == "translation" {
			v, ok := r.DstNode.Get("translation")
			require.True(t, ok)
			got, ok := v.Vec3f()
			require.True(t, ok)
			translation = &got
		}
	}
	require.NotNil(t, translation)
	assert.Equal(t, math32.Vector3{X: 1, Y: 2, Z: 3}, *translation)

	require.NoError(t, eng.Load(doc))
	s := eng.Simulator()
	v := value.New(value.SFVec3f)
	require.NoError(t, v.SetVec3f(math32.Vector3{X: 4, Y: 5, Z: 6}))
	s.Enqueue(sim.Event{Time: 1, Target: inst, ID: "set_position", Value: v})
	s.Update(1)

	for _, r := range eng.Routes().FromSource(inst) {
		if r.DstID == "translation" {
			got, ok := r.DstNode.Get("translation")
			require.True(t, ok)
			v3, ok := got.Vec3f()
			require.True(t, ok)
			assert.Equal(t, math32.Vector3{X: 4, Y: 5, Z: 6}, v3)
		}
	}
}

// Two instances of the same PROTO have independent body node graphs.
func TestParsePROTOInstancesAreIndependent(t *testing.T) {
	eng := newTestEngine(t)
	src := `
PROTO Widget [ exposedField SFVec3f position 0 0 0 ] {
  Transform { translation IS position }
}
DEF A Widget { position 1 0 0 }
DEF B Widget { position 2 0 0 }
`
	doc, _, err := Parse(strings.NewReader(src), "test:protoinst.wrl", "model/vrml", eng)
	require.NoError(t, err)
	require.Len(t, doc.Roots, 2)

	aBody := eng.Routes().FromSource(doc.Roots[0])[0].DstNode
	bBody := eng.Routes().FromSource(doc.Roots[1])[0].DstNode
	assert.NotSame(t, aBody, bBody)

	av, _ := aBody.Get("translation")
	bv, _ := bBody.Get("translation")
	aVec, _ := av.Vec3f()
	bVec, _ := bv.Vec3f()
	assert.Equal(t, math32.Vector3{X: 1}, aVec)
	assert.Equal(t, math32.Vector3{X: 2}, bVec)
}

// Deprecated 1997-era interface-access keywords fire exactly once per
// occurrence when used as a field identifier (spec.md §8).
func TestDeprecatedKeywordWarningFiresOncePerOccurrence(t *testing.T) {
	p := &Parser{deprecated: make(map[string]int)}
	for i := 0; i < 3; i++ {
		p.checkDeprecated(Token{Kind: TokIdent, Text: "eventIn", Line: i + 1})
	}
	p.checkDeprecated(Token{Kind: TokIdent, Text: "field", Line: 10})
	counts := p.DeprecatedCounts()
	assert.Equal(t, 3, counts["eventIn"])
	assert.Equal(t, 1, counts["field"])
}

// MediaType selects the dialect, or reports BadMediaType for neither.
func TestMediaTypeDialectSelection(t *testing.T) {
	d, err := MediaType("model/vrml")
	require.NoError(t, err)
	assert.Equal(t, Compact, d)

	d, err = MediaType("x-world/x-vrml")
	require.NoError(t, err)
	assert.Equal(t, Compact, d)

	d, err = MediaType("model/x3d-vrml")
	require.NoError(t, err)
	assert.Equal(t, Extended, d)

	_, err = MediaType("text/plain")
	require.Error(t, err)
	var bad *errs.BadMediaType
	require.ErrorAs(t, err, &bad)
}

// Scenario 5 (spec.md §8): an extended-dialect scene whose header is
// "PROFILE Interchange" installs exactly the component/level set
// documented for that profile; a node type unique to a higher profile
// (KeyDeviceSensor) fails to parse with UnsupportedInterface.
func TestExtendedDialectProfileHeaderRestrictsNodeSet(t *testing.T) {
	eng := newTestEngine(t, engine.WithProfile(profile.None))
	src := `#X3D V3.0 utf8
PROFILE Interchange
Group { children [ Shape { geometry Box { size 1 1 1 } } ] }
`
	doc, _, err := Parse(strings.NewReader(src), "test:interchange.x3dv", "model/x3d-vrml", eng)
	require.NoError(t, err)
	require.Len(t, doc.Roots, 1)

	_, ok := eng.RootScope().FindType("Box")
	assert.True(t, ok)
	_, ok = eng.RootScope().FindType("KeyDeviceSensor")
	assert.False(t, ok)

	src2 := `#X3D V3.0 utf8
PROFILE Interchange
KeyDeviceSensor { }
`
	_, _, err = Parse(strings.NewReader(src2), "test:interchange2.x3dv", "model/x3d-vrml", eng)
	require.Error(t, err)
	var unsupported *errs.UnsupportedInterface
	require.ErrorAs(t, err, &unsupported)
}

// COMPONENT statements add a single component level on top of whatever
// PROFILE already installed.
func TestExtendedDialectComponentHeaderAddsLevel(t *testing.T) {
	eng := newTestEngine(t, engine.WithProfile(profile.None))
	src := `#X3D V3.0 utf8
PROFILE Interchange
COMPONENT KeyDeviceSensor:1
KeyDeviceSensor { }
`
	doc, _, err := Parse(strings.NewReader(src), "test:component.x3dv", "model/x3d-vrml", eng)
	require.NoError(t, err)
	require.Len(t, doc.Roots, 1)
	assert.Equal(t, "KeyDeviceSensor", doc.Roots[0].Type().LocalID)
}

// META key/value pairs populate the returned Document's Metadata map
// (extended dialect only).
func TestExtendedDialectMetaPopulatesMetadata(t *testing.T) {
	eng := newTestEngine(t, engine.WithProfile(profile.None))
	src := `#X3D V3.0 utf8
PROFILE Interchange
META "title" "a test scene"
META "creator" "vscene"
`
	doc, _, err := Parse(strings.NewReader(src), "test:meta.x3dv", "model/x3d-vrml", eng)
	require.NoError(t, err)
	require.NotNil(t, doc.Metadata)
	assert.Equal(t, "a test scene", doc.Metadata["title"])
	assert.Equal(t, "vscene", doc.Metadata["creator"])
}

// IMPORT/EXPORT statements are accepted syntactically (with a warning)
// rather than failing the parse, since cross-file name resolution depends
// on the Inline node's URL fetch, an external collaborator outside this
// core's scope (spec.md §1).
func TestExtendedDialectImportExportAreAcceptedWithWarning(t *testing.T) {
	eng := newTestEngine(t, engine.WithProfile(profile.None))
	src := `#X3D V3.0 utf8
PROFILE Interchange
IMPORT Inline1.ExportedNode AS LocalNode
EXPORT LocalNode AS AnotherName
Group { }
`
	doc, warnings, err := Parse(strings.NewReader(src), "test:importexport.x3dv", "model/x3d-vrml", eng)
	require.NoError(t, err)
	require.Len(t, doc.Roots, 1)
	assert.Len(t, warnings, 2)
}

// Rotation axis normalization warning fires iff the axis isn't unit length.
func TestRotationAxisNormalizationWarning(t *testing.T) {
	eng := newTestEngine(t)
	src := `Transform { rotation 0 2 0 1.5708 }`
	_, warnings, err := Parse(strings.NewReader(src), "test:rot.wrl", "model/vrml", eng)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "axis")
}

