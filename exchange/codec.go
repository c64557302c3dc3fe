// SPDX-License-Identifier: MIT
// Package: truck/exchange
//
// codec.go — geometry (de)serialization. StdCodec covers the geom
// package's reference types; wrappers (Reversed, Transformed*) nest
// their payloads recursively.

package exchange

import (
	"encoding/json"
	"fmt"

	"github.com/alxpettit/truck/geom"
)

// Codec turns curves and surfaces into tagged payloads and back.
// Implementations must be symmetric: DecodeCurve(EncodeCurve(c))
// evaluates identically to c.
type Codec interface {
	EncodeCurve(c geom.Curve) (GeomSpec, error)
	DecodeCurve(spec GeomSpec) (geom.Curve, error)
	EncodeSurface(s geom.Surface) (GeomSpec, error)
	DecodeSurface(spec GeomSpec) (geom.Surface, error)
}

// StdCodec is the stateless codec for the geom reference types.
type StdCodec struct{}

// Geometry kind tags.
const (
	kindLine       = "line"
	kindArc        = "arc"
	kindReversed   = "reversed"
	kindTrfCurve   = "transformed-curve"
	kindPlane      = "plane"
	kindExtrusion  = "extrusion"
	kindRevolution = "revolution"
	kindRuled      = "ruled"
	kindTrfSurface = "transformed-surface"
)

type lineDTO struct {
	A [3]float64 `json:"a"`
	B [3]float64 `json:"b"`
}

type arcDTO struct {
	Center [3]float64 `json:"center"`
	Axis   [3]float64 `json:"axis"`
	Start  [3]float64 `json:"start"`
	Angle  float64    `json:"angle"`
}

type wrapCurveDTO struct {
	C GeomSpec `json:"c"`
}

type trfCurveDTO struct {
	C GeomSpec      `json:"c"`
	M [3][3]float64 `json:"m"`
	T [3]float64    `json:"t"`
}

type planeDTO struct {
	Origin [3]float64 `json:"origin"`
	U      [3]float64 `json:"u"`
	V      [3]float64 `json:"v"`
}

type extrusionDTO struct {
	C   GeomSpec   `json:"c"`
	Dir [3]float64 `json:"dir"`
}

type revolutionDTO struct {
	C      GeomSpec   `json:"c"`
	Origin [3]float64 `json:"origin"`
	Dir    [3]float64 `json:"dir"`
	Angle  float64    `json:"angle"`
}

type ruledDTO struct {
	C0 GeomSpec `json:"c0"`
	C1 GeomSpec `json:"c1"`
}

type trfSurfaceDTO struct {
	S GeomSpec      `json:"s"`
	M [3][3]float64 `json:"m"`
	T [3]float64    `json:"t"`
}

// EncodeCurve tags and serializes a curve.
func (sc StdCodec) EncodeCurve(c geom.Curve) (GeomSpec, error) {
	switch c := c.(type) {
	case geom.Line:
		return pack(kindLine, lineDTO{A: arr(c.A.Vec()), B: arr(c.B.Vec())})
	case geom.Arc:
		return pack(kindArc, arcDTO{
			Center: arr(c.Center.Vec()),
			Axis:   arr(c.Axis),
			Start:  arr(c.Start.Vec()),
			Angle:  c.Angle,
		})
	case geom.Reversed:
		inner, err := sc.EncodeCurve(c.C)
		if err != nil {
			return GeomSpec{}, err
		}

		return pack(kindReversed, wrapCurveDTO{C: inner})
	case geom.TransformedCurve:
		inner, err := sc.EncodeCurve(c.C)
		if err != nil {
			return GeomSpec{}, err
		}
		m, t := c.Trf.Matrix()

		return pack(kindTrfCurve, trfCurveDTO{C: inner, M: m, T: arr(t)})
	default:
		return GeomSpec{}, fmt.Errorf("curve %T: %w", c, ErrUnsupportedGeometry)
	}
}

// DecodeCurve reverses EncodeCurve.
func (sc StdCodec) DecodeCurve(spec GeomSpec) (geom.Curve, error) {
	switch spec.Kind {
	case kindLine:
		var d lineDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}

		return geom.Line{A: pt(d.A), B: pt(d.B)}, nil
	case kindArc:
		var d arcDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}

		return geom.Arc{Center: pt(d.Center), Axis: vec(d.Axis), Start: pt(d.Start), Angle: d.Angle}, nil
	case kindReversed:
		var d wrapCurveDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}
		inner, err := sc.DecodeCurve(d.C)
		if err != nil {
			return nil, err
		}

		return geom.Reversed{C: inner}, nil
	case kindTrfCurve:
		var d trfCurveDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}
		inner, err := sc.DecodeCurve(d.C)
		if err != nil {
			return nil, err
		}

		return geom.TransformedCurve{C: inner, Trf: geom.FromMatrix(d.M, vec(d.T))}, nil
	default:
		return nil, fmt.Errorf("curve kind %q: %w", spec.Kind, ErrUnknownKind)
	}
}

// EncodeSurface tags and serializes a surface.
func (sc StdCodec) EncodeSurface(s geom.Surface) (GeomSpec, error) {
	switch s := s.(type) {
	case geom.Plane:
		return pack(kindPlane, planeDTO{Origin: arr(s.Origin.Vec()), U: arr(s.U), V: arr(s.V)})
	case geom.Extrusion:
		inner, err := sc.EncodeCurve(s.C)
		if err != nil {
			return GeomSpec{}, err
		}

		return pack(kindExtrusion, extrusionDTO{C: inner, Dir: arr(s.Dir)})
	case geom.Revolution:
		inner, err := sc.EncodeCurve(s.C)
		if err != nil {
			return GeomSpec{}, err
		}

		return pack(kindRevolution, revolutionDTO{
			C:      inner,
			Origin: arr(s.Ax.Origin.Vec()),
			Dir:    arr(s.Ax.Dir),
			Angle:  s.Angle,
		})
	case geom.Ruled:
		c0, err := sc.EncodeCurve(s.C0)
		if err != nil {
			return GeomSpec{}, err
		}
		c1, err := sc.EncodeCurve(s.C1)
		if err != nil {
			return GeomSpec{}, err
		}

		return pack(kindRuled, ruledDTO{C0: c0, C1: c1})
	case geom.TransformedSurface:
		inner, err := sc.EncodeSurface(s.S)
		if err != nil {
			return GeomSpec{}, err
		}
		m, t := s.Trf.Matrix()

		return pack(kindTrfSurface, trfSurfaceDTO{S: inner, M: m, T: arr(t)})
	default:
		return GeomSpec{}, fmt.Errorf("surface %T: %w", s, ErrUnsupportedGeometry)
	}
}

// DecodeSurface reverses EncodeSurface.
func (sc StdCodec) DecodeSurface(spec GeomSpec) (geom.Surface, error) {
	switch spec.Kind {
	case kindPlane:
		var d planeDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}

		return geom.Plane{Origin: pt(d.Origin), U: vec(d.U), V: vec(d.V)}, nil
	case kindExtrusion:
		var d extrusionDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}
		inner, err := sc.DecodeCurve(d.C)
		if err != nil {
			return nil, err
		}

		return geom.Extrusion{C: inner, Dir: vec(d.Dir)}, nil
	case kindRevolution:
		var d revolutionDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}
		inner, err := sc.DecodeCurve(d.C)
		if err != nil {
			return nil, err
		}

		return geom.Revolution{
			C:     inner,
			Ax:    geom.Axis{Origin: pt(d.Origin), Dir: vec(d.Dir)},
			Angle: d.Angle,
		}, nil
	case kindRuled:
		var d ruledDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}
		c0, err := sc.DecodeCurve(d.C0)
		if err != nil {
			return nil, err
		}
		c1, err := sc.DecodeCurve(d.C1)
		if err != nil {
			return nil, err
		}

		return geom.Ruled{C0: c0, C1: c1}, nil
	case kindTrfSurface:
		var d trfSurfaceDTO
		if err := unpack(spec, &d); err != nil {
			return nil, err
		}
		inner, err := sc.DecodeSurface(d.S)
		if err != nil {
			return nil, err
		}

		return geom.TransformedSurface{S: inner, Trf: geom.FromMatrix(d.M, vec(d.T))}, nil
	default:
		return nil, fmt.Errorf("surface kind %q: %w", spec.Kind, ErrUnknownKind)
	}
}

// pack marshals a DTO under its kind tag.
func pack(kind string, dto any) (GeomSpec, error) {
	data, err := json.Marshal(dto)
	if err != nil {
		return GeomSpec{}, fmt.Errorf("exchange: encode %s: %w", kind, err)
	}

	return GeomSpec{Kind: kind, Data: data}, nil
}

// unpack unmarshals a spec's payload into a DTO.
func unpack(spec GeomSpec, dto any) error {
	if err := json.Unmarshal(spec.Data, dto); err != nil {
		return fmt.Errorf("decode %s payload: %v: %w", spec.Kind, err, ErrMalformed)
	}

	return nil
}

func arr(v geom.Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func vec(a [3]float64) geom.Vector3 {
	return geom.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func pt(a [3]float64) geom.Point3 {
	return geom.Point3{X: a[0], Y: a[1], Z: a[2]}
}
