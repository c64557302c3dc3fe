package tolerance

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alxpettit/truck/geom"
)

// Documented defaults. They mirror the source system's kernel defaults;
// override per deployment through options or a YAML policy document.
const (
	DefaultPoint           = 1e-7 // point-coincidence distance
	DefaultParam           = 1e-9 // parametric closeness
	DefaultAngle           = 1e-7 // angular closeness, radians
	DefaultAmbiguityFactor = 2.0  // guard-band width around Point
)

// Coincidence is the verdict of a tolerance-bound distance check.
type Coincidence int

const (
	// Distinct: the quantities are reliably different.
	Distinct Coincidence = iota
	// Ambiguous: the measurement sits inside the guard band where neither
	// verdict is reliable. Callers must surface this, not resolve it.
	Ambiguous
	// Coincident: the quantities are reliably the same.
	Coincident
)

// String implements fmt.Stringer for diagnostics.
func (c Coincidence) String() string {
	switch c {
	case Distinct:
		return "distinct"
	case Ambiguous:
		return "ambiguous"
	case Coincident:
		return "coincident"
	default:
		return fmt.Sprintf("coincidence(%d)", int(c))
	}
}

// Policy is the process- or context-wide set of epsilons. Immutable;
// copy it freely.
type Policy struct {
	// Point is the coincidence distance: below it two points are the same
	// vertex location.
	Point float64 `yaml:"point"`
	// Param is the parametric closeness threshold.
	Param float64 `yaml:"param"`
	// Angle is the angular closeness threshold in radians: below it two
	// directions are parallel (used to detect degenerate sweep directions
	// and full-turn revolutions).
	Angle float64 `yaml:"angle"`
	// AmbiguityFactor widens the coincidence test into a band
	// [Point/factor, Point·factor); distances inside it classify as
	// Ambiguous. Must be > 1; values ≤ 1 disable the band.
	AmbiguityFactor float64 `yaml:"ambiguity_factor"`
}

// Option adjusts a Policy during construction.
type Option func(*Policy)

// WithPoint sets the point-coincidence distance.
func WithPoint(eps float64) Option {
	return func(p *Policy) { p.Point = eps }
}

// WithParam sets the parametric-closeness threshold.
func WithParam(eps float64) Option {
	return func(p *Policy) { p.Param = eps }
}

// WithAngle sets the angular-closeness threshold in radians.
func WithAngle(eps float64) Option {
	return func(p *Policy) { p.Angle = eps }
}

// WithAmbiguityFactor sets the guard-band width multiplier.
func WithAmbiguityFactor(f float64) Option {
	return func(p *Policy) { p.AmbiguityFactor = f }
}

// Default returns the documented default policy with options applied.
func Default(opts ...Option) Policy {
	p := Policy{
		Point:           DefaultPoint,
		Param:           DefaultParam,
		Angle:           DefaultAngle,
		AmbiguityFactor: DefaultAmbiguityFactor,
	}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// FromYAML parses a policy document. Omitted fields keep their defaults,
// so a document may override just one epsilon.
func FromYAML(data []byte) (Policy, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("tolerance: parse policy: %w", err)
	}

	return p, nil
}

// LoadFile reads a YAML policy document from disk.
func LoadFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("tolerance: read policy: %w", err)
	}

	return FromYAML(data)
}

// NearZero reports whether |x| is below the point threshold.
func (p Policy) NearZero(x float64) bool {
	return math.Abs(x) < p.Point
}

// SamePoint reports whether a and b are the same location under the
// point threshold. Identity questions are answered by topo, never here.
func (p Policy) SamePoint(a, b geom.Point3) bool {
	return a.DistanceTo(b) < p.Point
}

// ClassifyDistance places a measured distance on one side of the point
// threshold, or inside the ambiguity band.
func (p Policy) ClassifyDistance(d float64) Coincidence {
	d = math.Abs(d)
	if p.AmbiguityFactor > 1 {
		lo := p.Point / p.AmbiguityFactor
		hi := p.Point * p.AmbiguityFactor
		switch {
		case d < lo:
			return Coincident
		case d < hi:
			return Ambiguous
		default:
			return Distinct
		}
	}
	if d < p.Point {
		return Coincident
	}

	return Distinct
}

// Classify places the distance between two points per ClassifyDistance.
func (p Policy) Classify(a, b geom.Point3) Coincidence {
	return p.ClassifyDistance(a.DistanceTo(b))
}

// Parallel reports whether two directions are parallel (or antiparallel)
// under the angular threshold. Zero vectors are parallel to everything.
func (p Policy) Parallel(a, b geom.Vector3) bool {
	ang := a.AngleTo(b)
	if ang > math.Pi/2 {
		ang = math.Pi - ang
	}

	return ang < p.Angle
}

// FullTurn reports whether angle completes a full revolution within the
// angular threshold.
func (p Policy) FullTurn(angle float64) bool {
	return math.Abs(math.Abs(angle)-2*math.Pi) < p.Angle
}
