// Package preview draws a parallel-way gesture into a PNG image: the
// source ways, the dashed reference segment, the helper line from the
// reference to the pointer, the offset copy and the distance label.
package preview

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	parallel "github.com/gogpu/gg-parallel"
)

// Scene is everything one preview frame shows, in world coordinates.
type Scene struct {
	Source    [][]parallel.Point
	Copy      [][]parallel.Point
	Reference parallel.Segment

	// Helper line from Foot to Pointer, drawn when ShowHelper is set.
	Foot, Pointer parallel.Point
	ShowHelper    bool

	// Distance is printed next to the pointer as its absolute value.
	Distance float64
}

// NewScene builds a scene from a source chain, its reference segment and
// a copy. The copy may be nil.
func NewScene(chain parallel.SourceChain, ref parallel.Segment, c *parallel.Copy) Scene {
	s := Scene{Reference: ref}
	for _, w := range chain.Ways {
		pl := make([]parallel.Point, len(w.Vertices))
		for i, v := range w.Vertices {
			pl[i] = v.Pos
		}
		s.Source = append(s.Source, pl)
	}
	if c != nil {
		s.Copy = c.Polylines()
	}
	return s
}

// WithDrag returns s with the helper line and distance of a drag result.
func (s Scene) WithDrag(r parallel.DragResult) Scene {
	s.Foot, s.Pointer = r.Foot, r.Pointer
	s.ShowHelper = true
	s.Distance = r.Distance
	return s
}

// Bounds returns the smallest box holding every point of the scene.
// ok is false for an empty scene.
func (s Scene) Bounds() (lo, hi parallel.Point, ok bool) {
	lo = parallel.Pt(math.Inf(1), math.Inf(1))
	hi = parallel.Pt(math.Inf(-1), math.Inf(-1))
	grow := func(p parallel.Point) {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
		ok = true
	}
	for _, set := range [][][]parallel.Point{s.Source, s.Copy} {
		for _, pl := range set {
			for _, p := range pl {
				grow(p)
			}
		}
	}
	if s.ShowHelper {
		grow(s.Foot)
		grow(s.Pointer)
	}
	return lo, hi, ok
}

// transform maps world coordinates to pixels, y axis up.
type transform struct {
	scale  float64
	lo     parallel.Point
	ox, oy float64
	height float64
}

func fit(lo, hi parallel.Point, o options) transform {
	w := float64(o.width) - 2*o.margin
	h := float64(o.height) - 2*o.margin
	dx, dy := hi.X-lo.X, hi.Y-lo.Y

	scale := 1.0
	switch {
	case dx > 0 && dy > 0:
		scale = math.Min(w/dx, h/dy)
	case dx > 0:
		scale = w / dx
	case dy > 0:
		scale = h / dy
	}
	return transform{
		scale:  scale,
		lo:     lo,
		ox:     o.margin + (w-dx*scale)/2,
		oy:     o.margin + (h-dy*scale)/2,
		height: float64(o.height),
	}
}

func (t transform) apply(p parallel.Point) (x, y float64) {
	x = t.ox + (p.X-t.lo.X)*t.scale
	y = t.height - (t.oy + (p.Y-t.lo.Y)*t.scale)
	return x, y
}

// Render draws s and writes it to w as PNG.
func Render(w io.Writer, s Scene, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dc := gg.NewContext(o.width, o.height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	var face text.Face
	if s.ShowHelper && o.fontSize > 0 {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return fmt.Errorf("preview: font: %w", err)
		}
		defer src.Close()
		face = src.Face(o.fontSize)
	}

	if lo, hi, ok := s.Bounds(); ok {
		if err := draw(dc, fit(lo, hi, o), s, o, face); err != nil {
			return err
		}
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("preview: encode: %w", err)
	}
	return nil
}

func draw(dc *gg.Context, t transform, s Scene, o options, face text.Face) error {
	dc.SetLineWidth(o.lineWidth)

	dc.SetRGB(0.6, 0.6, 0.6)
	for _, pl := range s.Source {
		if err := polyline(dc, t, pl); err != nil {
			return err
		}
	}

	dc.SetRGB(0.85, 0.1, 0.1)
	dc.SetDash(2, 2)
	if err := polyline(dc, t, []parallel.Point{s.Reference.A, s.Reference.B}); err != nil {
		return err
	}
	dc.ClearDash()

	if s.ShowHelper {
		if err := polyline(dc, t, []parallel.Point{s.Foot, s.Pointer}); err != nil {
			return err
		}
	}

	dc.SetRGB(0.1, 0.3, 0.9)
	for _, pl := range s.Copy {
		if err := polyline(dc, t, pl); err != nil {
			return err
		}
	}

	if face != nil {
		dc.SetFont(face)
		dc.SetRGB(0, 0, 0)
		x, y := t.apply(s.Pointer)
		dc.DrawString(fmt.Sprintf("%.2f", math.Abs(s.Distance)), x+4, y-4)
	}
	return nil
}

func polyline(dc *gg.Context, t transform, pl []parallel.Point) error {
	if len(pl) < 2 {
		return nil
	}
	dc.MoveTo(t.apply(pl[0]))
	for _, p := range pl[1:] {
		dc.LineTo(t.apply(p))
	}
	return dc.Stroke()
}
