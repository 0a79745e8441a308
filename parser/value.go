package parser

import (
	"fmt"
	"strconv"

	"github.com/quadroom/vscene/math32"
	"github.com/quadroom/vscene/value"
)

func parseFloat32(tok Token) (float32, error) {
	f, err := strconv.ParseFloat(tok.Text, 32)
	if err != nil {
		return 0, fmt.Errorf("%d:%d: not a number: %q", tok.Line, tok.Col, tok.Text)
	}
	return float32(f), nil
}

func parseFloat64(tok Token) (float64, error) {
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, fmt.Errorf("%d:%d: not a number: %q", tok.Line, tok.Col, tok.Text)
	}
	return f, nil
}

func parseInt32(tok Token) (int32, error) {
	f, err := parseFloat64(tok)
	if err != nil {
		return 0, err
	}
	return int32(f), nil
}

func parseBoolLiteral(tok Token) (bool, error) {
	switch tok.Text {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	}
	return false, fmt.Errorf("%d:%d: expected TRUE or FALSE, got %q", tok.Line, tok.Col, tok.Text)
}

// rotationAxisWarnEpsilon is the §8 testable property's tolerance: the
// unnormalized-axis warning fires iff the parsed axis length falls outside
// [1-eps, 1+eps].
const rotationAxisWarnEpsilon = 1e-6

// normalizeRotationAxis normalizes r's axis to unit length (substituting
// (0,1,0) for a degenerate near-zero axis, per spec.md §3.1), warning
// through warn iff the axis as parsed was not already unit length (spec.md
// §4, §8: "the unnormalized-rotation warning fires iff the parsed axis
// vector has length outside [1-ε, 1+ε]").
func normalizeRotationAxis(r value.Rotation, tok Token, warn func(Token, string)) value.Rotation {
	if value.AxisNeedsNormalization(r.Axis, rotationAxisWarnEpsilon) {
		warn(tok, "rotation axis is not unit length; normalizing")
	}
	return value.NormalizeRotation(r)
}

// parseSF reads a single-value literal of kind (any SF- kind except
// SFNode, handled separately by the caller since it needs scope access).
func (p *Parser) parseSF(kind value.Kind, warn func(Token, string)) (*value.Value, error) {
	v := value.New(kind)
	switch kind {
	case value.SFBool:
		tok, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		b, err := parseBoolLiteral(tok)
		if err != nil {
			return nil, err
		}
		v.SetBool(b)
	case value.SFInt32:
		tok, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		i, err := parseInt32(tok)
		if err != nil {
			return nil, err
		}
		v.SetInt32(i)
	case value.SFFloat:
		tok, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		f, err := parseFloat32(tok)
		if err != nil {
			return nil, err
		}
		v.SetFloat(f)
	case value.SFDouble, value.SFTime:
		tok, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		d, err := parseFloat64(tok)
		if err != nil {
			return nil, err
		}
		if kind == value.SFTime {
			v.SetTime(d)
		} else {
			v.SetDouble(d)
		}
	case value.SFString:
		tok, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokString {
			return nil, fmt.Errorf("%d:%d: expected a quoted string, got %q", tok.Line, tok.Col, tok.Text)
		}
		v.SetString(tok.Text)
	case value.SFColor:
		c, err := p.parseColor3()
		if err != nil {
			return nil, err
		}
		v.SetColor(c)
	case value.SFColorRGBA:
		c, err := p.parseColor4()
		if err != nil {
			return nil, err
		}
		v.SetColorRGBA(c)
	case value.SFVec2f:
		p2, err := p.parseVec2()
		if err != nil {
			return nil, err
		}
		v.SetVec2f(p2)
	case value.SFVec3f:
		p3, err := p.parseVec3f()
		if err != nil {
			return nil, err
		}
		v.SetVec3f(p3)
	case value.SFVec3d:
		p3, err := p.parseVec3d()
		if err != nil {
			return nil, err
		}
		v.SetVec3d(p3)
	case value.SFRotation:
		r, tok, err := p.parseRotationLiteral()
		if err != nil {
			return nil, err
		}
		r = normalizeRotationAxis(r, tok, warn)
		v.SetRotation(r)
	default:
		return nil, fmt.Errorf("parser: unsupported single-value kind %s", kind)
	}
	return v, nil
}

// parseMF reads a bracketed, comma-optional list literal of the MF- kind
// given (spec.md §3.1's MF- container shape; the tokenizer already treats
// commas as insignificant whitespace).
func (p *Parser) parseMF(kind value.Kind, warn func(Token, string)) (*value.Value, error) {
	v := value.New(kind)
	open, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if open.Kind != TokPunct || open.Text != "[" {
		return nil, fmt.Errorf("%d:%d: expected '[' to start a multi-value field, got %q", open.Line, open.Col, open.Text)
	}
	single := singleKindOf(kind)
	for {
		peek, err := p.tok.Peek()
		if err != nil {
			return nil, err
		}
		if peek.Kind == TokPunct && peek.Text == "]" {
			p.tok.Next()
			break
		}
		item, err := p.parseSF(single, warn)
		if err != nil {
			return nil, err
		}
		if err := appendItem(v, item); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func singleKindOf(mf value.Kind) value.Kind {
	switch mf {
	case value.MFBool:
		return value.SFBool
	case value.MFInt32:
		return value.SFInt32
	case value.MFFloat:
		return value.SFFloat
	case value.MFDouble:
		return value.SFDouble
	case value.MFTime:
		return value.SFTime
	case value.MFString:
		return value.SFString
	case value.MFColor:
		return value.SFColor
	case value.MFColorRGBA:
		return value.SFColorRGBA
	case value.MFVec2f:
		return value.SFVec2f
	case value.MFVec3f:
		return value.SFVec3f
	case value.MFVec3d:
		return value.SFVec3d
	case value.MFRotation:
		return value.SFRotation
	}
	return mf
}

func appendItem(v, item *value.Value) error {
	switch v.Kind() {
	case value.MFBool:
		b, _ := item.Bool()
		return v.AppendBool(b)
	case value.MFInt32:
		i, _ := item.Int32()
		return v.AppendInt32(i)
	case value.MFFloat:
		f, _ := item.Float()
		return v.AppendFloat(f)
	case value.MFDouble:
		d, _ := item.Double()
		return v.AppendDouble(d)
	case value.MFTime:
		d, _ := item.Time()
		return v.AppendDouble(d)
	case value.MFString:
		s, _ := item.Str()
		return v.AppendString(s)
	case value.MFColor:
		c, _ := item.Color()
		return v.AppendColor(c)
	case value.MFColorRGBA:
		c, _ := item.ColorRGBA()
		return v.AppendColorRGBA(c)
	case value.MFVec2f:
		p2, _ := item.Vec2f()
		return v.AppendVec2f(p2)
	case value.MFVec3f:
		p3, _ := item.Vec3f()
		return v.AppendVec3f(p3)
	case value.MFVec3d:
		p3, _ := item.Vec3d()
		return v.AppendVec3d(p3)
	case value.MFRotation:
		r, _ := item.Rotation()
		return v.AppendRotation(r)
	}
	return fmt.Errorf("parser: unsupported multi-value kind %s", v.Kind())
}

func (p *Parser) parseFloat32Tok() (float32, error) {
	tok, err := p.tok.Next()
	if err != nil {
		return 0, err
	}
	return parseFloat32(tok)
}

func (p *Parser) parseFloat64Tok() (float64, error) {
	tok, err := p.tok.Next()
	if err != nil {
		return 0, err
	}
	return parseFloat64(tok)
}

func (p *Parser) parseVec2() (math32.Vector2, error) {
	x, err := p.parseFloat32Tok()
	if err != nil {
		return math32.Vector2{}, err
	}
	y, err := p.parseFloat32Tok()
	if err != nil {
		return math32.Vector2{}, err
	}
	return math32.Vector2{X: x, Y: y}, nil
}

func (p *Parser) parseVec3f() (math32.Vector3, error) {
	x, err := p.parseFloat32Tok()
	if err != nil {
		return math32.Vector3{}, err
	}
	y, err := p.parseFloat32Tok()
	if err != nil {
		return math32.Vector3{}, err
	}
	z, err := p.parseFloat32Tok()
	if err != nil {
		return math32.Vector3{}, err
	}
	return math32.Vector3{X: x, Y: y, Z: z}, nil
}

// parseVec3d reads a double-precision SFVec3d/MFVec3d component triple
// via parseFloat64Tok, not parseVec3f's float32 path, so the extended
// dialect's double-precision vectors (spec.md §3.1, §6.1) keep their full
// precision instead of being truncated to float32 and widened back.
func (p *Parser) parseVec3d() (value.Vector3d, error) {
	x, err := p.parseFloat64Tok()
	if err != nil {
		return value.Vector3d{}, err
	}
	y, err := p.parseFloat64Tok()
	if err != nil {
		return value.Vector3d{}, err
	}
	z, err := p.parseFloat64Tok()
	if err != nil {
		return value.Vector3d{}, err
	}
	return value.Vector3d{X: x, Y: y, Z: z}, nil
}

func (p *Parser) parseColor3() (math32.Color, error) {
	v3, err := p.parseVec3f()
	if err != nil {
		return math32.Color{}, err
	}
	return math32.Color{R: v3.X, G: v3.Y, B: v3.Z}, nil
}

func (p *Parser) parseColor4() (math32.Color4, error) {
	c3, err := p.parseColor3()
	if err != nil {
		return math32.Color4{}, err
	}
	a, err := p.parseFloat32Tok()
	if err != nil {
		return math32.Color4{}, err
	}
	return math32.Color4{R: c3.R, G: c3.G, B: c3.B, A: a}, nil
}

func (p *Parser) parseRotationLiteral() (value.Rotation, Token, error) {
	v3, err := p.parseVec3f()
	if err != nil {
		return value.Rotation{}, Token{}, err
	}
	angleTok, err := p.tok.Next()
	if err != nil {
		return value.Rotation{}, Token{}, err
	}
	angle, err := parseFloat32(angleTok)
	if err != nil {
		return value.Rotation{}, Token{}, err
	}
	return value.Rotation{Axis: v3, Angle: angle}, angleTok, nil
}
