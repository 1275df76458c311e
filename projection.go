// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"errors"
	"fmt"
	"slices"

	"github.com/golang/geo/s2"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

const (
	defaultEps = 1e-9
)

type Options struct {
	// Eps is the angular tolerance, in radians, for matching shared edges
	// and for point containment.
	Eps           float64
	RootPlacement map[int]matrix.Matrix
}

type Option func(*Options) error

func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return errors.New("WithEps: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// WithRootTransform places the tree rooted at face root with m instead of the
// identity. m must be a rotation plus translation.
func WithRootTransform(root int, m matrix.Matrix) Option {
	return func(o *Options) error {
		if root < 0 {
			return fmt.Errorf("WithRootTransform: root %d must be non-negative", root)
		}
		if !isRigid(m, 1e-9) {
			return fmt.Errorf("WithRootTransform: %v is not a rigid transform", m)
		}
		if o.RootPlacement == nil {
			o.RootPlacement = make(map[int]matrix.Matrix)
		}
		o.RootPlacement[root] = m
		return nil
	}
}

// Config holds the global parameters of a projection.
type Config struct {
	// Rotation is applied to the sphere before faces are located.
	Rotation Rotation
	// Angle rotates the assembled net, in degrees counterclockwise.
	Angle float64
	// Scale multiplies net coordinates. The y axis is flipped so that the
	// output follows screen orientation, y growing downwards.
	Scale     float64
	Translate vec.Vec2
	// Precision bounds, in degrees, the length of the great-circle segments
	// projected by the stitcher. Zero disables densification.
	Precision float64
}

// DefaultConfig returns the identity configuration.
func DefaultConfig() Config {
	return Config{Scale: 1}
}

// Projection is a polyhedral projection: an unfolded net of faces together
// with its configuration. Projections are immutable; setters return a new
// Projection sharing the net.
type Projection struct {
	net     *Net
	cfg     Config
	locator Locator
	rot     rotator
	// NOTE: full[i] maps face i's local projection to output coordinates.
	full []matrix.Matrix
	inv  []matrix.Matrix
}

// New builds the net of faces linked by parents, where parents[i] is the
// index of face i's parent or -1 for a root, and unfolds it. Malformed trees
// and degenerate shared edges are reported here rather than on first use.
func New(faces []Face, parents []int, setters ...Option) (*Projection, error) {
	opts := Options{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	faces, err := ensurePolygons(faces)
	if err != nil {
		return nil, err
	}
	n, err := buildNet(faces, parents, opts.Eps)
	if err != nil {
		return nil, err
	}
	for root := range opts.RootPlacement {
		if root >= len(parents) || parents[root] != -1 {
			return nil, fmt.Errorf("s2polyhedral: root transform for face %d, which is not a root", root)
		}
	}
	if err := n.unfold(opts.RootPlacement); err != nil {
		return nil, err
	}

	p := &Projection{
		net:     n,
		locator: ScanLocator{Faces: faces, Eps: opts.Eps},
	}
	p.configure(DefaultConfig())
	return p, nil
}

// ensurePolygons returns a copy of faces in which faces built as struct
// literals rather than with NewFace get their polygon from Ring.
func ensurePolygons(faces []Face) ([]Face, error) {
	faces = slices.Clone(faces)
	for i, f := range faces {
		if f.polygon != nil {
			continue
		}
		rebuilt, err := NewFace(f.ID, f.Ring)
		if err != nil {
			return nil, err
		}
		faces[i] = rebuilt
	}
	return faces, nil
}

// Net returns the unfolded face forest.
func (p *Projection) Net() *Net {
	return p.net
}

// Config returns the projection's configuration.
func (p *Projection) Config() Config {
	return p.cfg
}

// WithConfig returns a copy of p using cfg.
func (p *Projection) WithConfig(cfg Config) *Projection {
	q := *p
	q.configure(cfg)
	return &q
}

// WithRotation returns a copy of p with the sphere pre-rotation set to r.
func (p *Projection) WithRotation(r Rotation) *Projection {
	cfg := p.cfg
	cfg.Rotation = r
	return p.WithConfig(cfg)
}

// WithAngle returns a copy of p with the net rotated by deg degrees.
func (p *Projection) WithAngle(deg float64) *Projection {
	cfg := p.cfg
	cfg.Angle = deg
	return p.WithConfig(cfg)
}

// WithScale returns a copy of p with scale factor k.
func (p *Projection) WithScale(k float64) *Projection {
	cfg := p.cfg
	cfg.Scale = k
	return p.WithConfig(cfg)
}

// WithTranslate returns a copy of p with the net origin moved to t.
func (p *Projection) WithTranslate(t vec.Vec2) *Projection {
	cfg := p.cfg
	cfg.Translate = t
	return p.WithConfig(cfg)
}

// WithPrecision returns a copy of p with the stitcher's resampling step set
// to deg degrees.
func (p *Projection) WithPrecision(deg float64) *Projection {
	cfg := p.cfg
	cfg.Precision = deg
	return p.WithConfig(cfg)
}

// WithLocator returns a copy of p locating faces with l. A nil l restores the
// exhaustive scan.
func (p *Projection) WithLocator(l Locator) *Projection {
	q := *p
	if l == nil {
		faces := make([]Face, p.net.Len())
		for i := range faces {
			faces[i] = p.net.nodes[i].Face
		}
		l = ScanLocator{Faces: faces, Eps: p.net.eps}
	}
	q.locator = l
	return &q
}

func (p *Projection) configure(cfg Config) {
	p.cfg = cfg
	p.rot = cfg.Rotation.rotator()

	global := matrix.RotateDeg(cfg.Angle).
		Mul(matrix.Scale(cfg.Scale, -cfg.Scale)).
		Translate(cfg.Translate.X, cfg.Translate.Y)
	p.full = make([]matrix.Matrix, p.net.Len())
	p.inv = make([]matrix.Matrix, p.net.Len())
	for i := range p.net.nodes {
		p.full[i] = p.net.nodes[i].Placement.Mul(global)
		if cfg.Scale != 0 {
			p.inv[i] = p.full[i].Inv()
		}
	}
}

// Locate returns the index of the face containing the coordinate, in degrees,
// after pre-rotation, or NotFound.
func (p *Projection) Locate(lng, lat float64) int {
	return p.locate(p.rot.forward(fromDegrees(lng, lat)))
}

func (p *Projection) locate(rotated s2.Point) int {
	i := p.locator.Locate(rotated)
	if i < 0 || i >= p.net.Len() {
		return NotFound
	}
	return i
}

// Forward projects the coordinate, in degrees, to the plane. It returns
// ErrLocationNotFound when no face contains the point; there is no
// nearest-face fallback.
func (p *Projection) Forward(lng, lat float64) (vec.Vec2, error) {
	v, _, err := p.ForwardPoint(fromDegrees(lng, lat))
	return v, err
}

// ForwardPoint projects pt to the plane and also returns the face used.
func (p *Projection) ForwardPoint(pt s2.Point) (vec.Vec2, int, error) {
	rotated := p.rot.forward(pt)
	i := p.locate(rotated)
	if i == NotFound {
		return vec.Vec2{}, NotFound, ErrLocationNotFound
	}
	v, ok := p.projectOn(i, rotated)
	if !ok {
		return vec.Vec2{}, NotFound, ErrLocationNotFound
	}
	return v, i, nil
}

// projectOn maps an already rotated point with face i's local projection,
// placement and the global transform.
func (p *Projection) projectOn(i int, rotated s2.Point) (vec.Vec2, bool) {
	local, ok := p.net.nodes[i].local.project(rotated)
	if !ok {
		return vec.Vec2{}, false
	}
	return apply(p.full[i], local), true
}

// Invert maps a planar point back to longitude and latitude in degrees. Faces
// are tried in traversal order and the first whose placed image contains the
// point is used. It returns ErrInversionNotFound when the point is outside
// the net.
func (p *Projection) Invert(v vec.Vec2) (lng, lat float64, err error) {
	pt, _, err := p.InvertPoint(v)
	if err != nil {
		return 0, 0, err
	}
	ll := s2.LatLngFromPoint(pt)
	return ll.Lng.Degrees(), ll.Lat.Degrees(), nil
}

// InvertPoint is like Invert but returns the point on the sphere and the face
// it was found in.
func (p *Projection) InvertPoint(v vec.Vec2) (s2.Point, int, error) {
	if p.cfg.Scale == 0 {
		return s2.Point{}, NotFound, ErrInversionNotFound
	}
	for _, i := range p.net.order {
		node := &p.net.nodes[i]
		local := apply(p.inv[i], v)
		if !convexContains(node.localImage, local, p.net.eps) {
			continue
		}
		return p.rot.inverse(node.local.unproject(local)), i, nil
	}
	return s2.Point{}, NotFound, ErrInversionNotFound
}

// Outline returns the placed boundary of every face in output coordinates,
// in traversal order.
func (p *Projection) Outline() Stitched {
	out := make(Stitched, 0, p.net.Len())
	for _, i := range p.net.order {
		node := &p.net.nodes[i]
		points := make([]vec.Vec2, len(node.localImage))
		for j, v := range node.localImage {
			points[j] = apply(p.full[i], v)
		}
		out = append(out, Fragment{Face: i, Points: points, Closed: true})
	}
	return out
}

// convexContains reports whether v lies in the CCW convex polygon, allowing
// eps of slack relative to each edge's length.
func convexContains(polygon []vec.Vec2, v vec.Vec2, eps float64) bool {
	n := len(polygon)
	for i := range n {
		a, b := polygon[i], polygon[(i+1)%n]
		if side(a, b, v) < -eps*b.Sub(a).Length() {
			return false
		}
	}
	return true
}

func fromDegrees(lng, lat float64) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))
}
