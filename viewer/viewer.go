// Package viewer declares the abstract rendering contract the scene
// traversal drives (spec.md §4.K). It contains no rendering code: every
// concrete front-end (OpenGL, software, headless test double) implements
// Viewer and is handed to the engine at construction.
package viewer

import (
	"github.com/quadroom/vscene/bounds"
	"github.com/quadroom/vscene/math32"
)

// Mode selects between draw and pick traversal; in Pick mode nodes may
// skip costly material setup (spec.md §4.K).
type Mode int

const (
	Draw Mode = iota
	Pick
)

// Object is an opaque handle returned by the Insert* methods, reusable
// via InsertReference for display-list-style caching. The core never
// inspects it.
type Object interface{}

// Geometry is a generic bag of vertex-level data passed to the insert
// calls for primitive categories whose exact field shape varies (box,
// cone, cylinder, elevation grid, extrusion, line set, point set, shell,
// sphere). Front-ends type-switch or read named fields as they see fit;
// the core only ever constructs and forwards this struct, never
// interprets it (spec.md §1: per-node-type rendering is out of scope).
type Geometry struct {
	Kind     string
	Vertices []math32.Vector3
	Normals  []math32.Vector3
	TexCoord []math32.Vector2
	Colors   []math32.Color
	Indices  []int32
	Params   map[string]float32
}

// Light describes a directional, point, or spot light's parameters.
type Light struct {
	Kind      string // "directional", "point", "spot"
	Color     math32.Color
	Intensity float32
	Location  math32.Vector3
	Direction math32.Vector3
	Radius    float32
	CutOffAngle float32
}

// Texture describes an image or movie texture and its wrap/filter state.
type Texture struct {
	Image   interface{}
	Repeat  [2]bool
	Filter  string
}

// Viewer is the abstract sink for geometry, lights, and textures the
// scene traversal drives (spec.md §4.K). A concrete renderer satisfies
// this interface; the core depends only on it.
type Viewer interface {
	// BeginFrame and EndFrame bracket one call to Engine.Render.
	BeginFrame()
	EndFrame()

	InsertBox(size math32.Vector3) Object
	InsertCone(bottomRadius, height float32) Object
	InsertCylinder(radius, height float32) Object
	InsertSphere(radius float32) Object
	InsertGeometry(g *Geometry) Object
	InsertLineSet(g *Geometry) Object
	InsertPointSet(g *Geometry) Object
	InsertShell(g *Geometry) Object

	InsertLight(l *Light) Object
	InsertBackground(colors []math32.Color, textures []Texture) Object
	InsertTexture(t *Texture) Object
	InsertTextureTransform(translation, scale math32.Vector2, rotation float32) Object

	// InsertReference reuses a previously returned Object (display-list
	// style).
	InsertReference(obj Object)

	Transform(m *math32.Matrix4)
	SetViewpoint(position math32.Vector3, orientation Orientation, fieldOfView float32, avatarSize [3]float32, jump bool)
	SetFog(color math32.Color, visibilityRange float32, fogType string)
	SetFrustum(f *bounds.Frustum)
	SetSensitive(obj Object)

	Mode() Mode
	SetMode(m Mode)
}

// Orientation is an axis-angle rotation expressed without importing the
// value package (which would create an import cycle back through
// node/ifaces).
type Orientation struct {
	Axis  math32.Vector3
	Angle float32
}

// DefaultIntersectViewVolume is the default implementation of spec.md
// §4.K's "intersect_view_volume", delegating to the bounding volume's own
// frustum test. Front-ends may call this directly rather than
// reimplementing it.
func DefaultIntersectViewVolume(bv bounds.Volume, f *bounds.Frustum) bounds.Containment {
	return bv.IntersectFrustum(f)
}
