package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders v using the scene-language textual syntax (spec.md §6.1).
// MF- values print as a bracketed, comma-separated list even when they
// hold a single element, matching the extended-dialect convention; the
// parser accepts the bracket-less single-value shorthand on read but Print
// always emits the canonical long form so that print(parse(s)) round-trips
// to a stable fixed point (spec.md §8).
func (v *Value) Print() string {
	switch v.kind {
	case SFBool:
		return strconv.FormatBool(v.b)
	case SFInt32:
		return strconv.FormatInt(int64(v.i), 10)
	case SFFloat:
		return formatFloat32(v.f)
	case SFDouble, SFTime:
		return formatFloat64(v.d)
	case SFString:
		return quoteString(v.s)
	case SFColor:
		return fmt.Sprintf("%s %s %s", formatFloat32(v.col.R), formatFloat32(v.col.G), formatFloat32(v.col.B))
	case SFColorRGBA:
		return fmt.Sprintf("%s %s %s %s", formatFloat32(v.col4.R), formatFloat32(v.col4.G), formatFloat32(v.col4.B), formatFloat32(v.col4.A))
	case SFVec2f:
		return fmt.Sprintf("%s %s", formatFloat32(v.v2.X), formatFloat32(v.v2.Y))
	case SFVec3f:
		return fmt.Sprintf("%s %s %s", formatFloat32(v.v3.X), formatFloat32(v.v3.Y), formatFloat32(v.v3.Z))
	case SFVec3d:
		return fmt.Sprintf("%s %s %s", formatFloat64(v.v3d.X), formatFloat64(v.v3d.Y), formatFloat64(v.v3d.Z))
	case SFRotation:
		return fmt.Sprintf("%s %s %s %s", formatFloat32(v.rot.Axis.X), formatFloat32(v.rot.Axis.Y), formatFloat32(v.rot.Axis.Z), formatFloat32(v.rot.Angle))
	case SFNode:
		if v.nd == nil {
			return "NULL"
		}
		return "USE"
	case SFImage:
		return fmt.Sprintf("%d %d %d", v.img.Width, v.img.Height, v.img.Components)
	}
	if v.kind.IsMulti() {
		return v.printMulti()
	}
	return ""
}

func (v *Value) printMulti() string {
	n := v.Len()
	parts := make([]string, 0, n)
	switch v.kind {
	case MFBool:
		for _, x := range v.mBool {
			parts = append(parts, strconv.FormatBool(x))
		}
	case MFInt32:
		for _, x := range v.mInt {
			parts = append(parts, strconv.FormatInt(int64(x), 10))
		}
	case MFFloat:
		for _, x := range v.mFloat {
			parts = append(parts, formatFloat32(x))
		}
	case MFDouble, MFTime:
		for _, x := range v.mDoub {
			parts = append(parts, formatFloat64(x))
		}
	case MFString:
		for _, x := range v.mStr {
			parts = append(parts, quoteString(x))
		}
	case MFColor:
		for _, x := range v.mCol {
			parts = append(parts, fmt.Sprintf("%s %s %s", formatFloat32(x.R), formatFloat32(x.G), formatFloat32(x.B)))
		}
	case MFColorRGBA:
		for _, x := range v.mCol4 {
			parts = append(parts, fmt.Sprintf("%s %s %s %s", formatFloat32(x.R), formatFloat32(x.G), formatFloat32(x.B), formatFloat32(x.A)))
		}
	case MFVec2f:
		for _, x := range v.mV2 {
			parts = append(parts, fmt.Sprintf("%s %s", formatFloat32(x.X), formatFloat32(x.Y)))
		}
	case MFVec3f:
		for _, x := range v.mV3 {
			parts = append(parts, fmt.Sprintf("%s %s %s", formatFloat32(x.X), formatFloat32(x.Y), formatFloat32(x.Z)))
		}
	case MFVec3d:
		for _, x := range v.mV3d {
			parts = append(parts, fmt.Sprintf("%s %s %s", formatFloat64(x.X), formatFloat64(x.Y), formatFloat64(x.Z)))
		}
	case MFRotation:
		for _, x := range v.mRot {
			parts = append(parts, fmt.Sprintf("%s %s %s %s", formatFloat32(x.Axis.X), formatFloat32(x.Axis.Y), formatFloat32(x.Axis.Z), formatFloat32(x.Angle)))
		}
	case MFNode:
		for _, x := range v.mNode {
			if x == nil {
				parts = append(parts, "NULL")
			} else {
				parts = append(parts, "USE")
			}
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatFloat64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
