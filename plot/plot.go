// Package plot draws two-dimensional training data together with the
// decision line w₀·x + w₁·y + w₂ = 0 learned by the perceptron.
//
// The output format follows the file extension (png, svg, pdf, eps, jpg,
// tif) as supported by gonum.org/v1/plot.
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/katalvlaran/perceptron/dataset"
	"github.com/katalvlaran/perceptron/vector"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrNotPlanar indicates a sample set whose points are not two-dimensional.
	ErrNotPlanar = errors.New("plot: only 2-D feature vectors can be drawn")

	// ErrBadWeights indicates a weight vector whose length is not 3.
	ErrBadWeights = errors.New("plot: weight vector must have 3 components")
)

// padFraction widens the data bounds on every side.
const padFraction = 0.15

var (
	class1Color   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	class2Color   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	boundaryColor = color.RGBA{A: 255}
)

// Options controls the figure.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns a 12×12 cm figure titled "perceptron".
func DefaultOptions() Options {
	return Options{
		Title:  "perceptron",
		Width:  12 * vg.Centimeter,
		Height: 12 * vg.Centimeter,
	}
}

// New builds the figure. w may be nil to draw the samples only.
func New(set *dataset.SampleSet, w vector.Vector, opts Options) (*gplot.Plot, error) {
	if set.Len() == 0 {
		return nil, fmt.Errorf("plot: %w", dataset.ErrEmptySampleSet)
	}
	if set.FeatureDim() != 2 {
		return nil, ErrNotPlanar
	}
	if w != nil && len(w) != 3 {
		return nil, ErrBadWeights
	}

	p := gplot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"
	p.Add(plotter.NewGrid())

	var c1, c2 plotter.XYs
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < set.Len(); i++ {
		pt := set.Point(i)
		xy := plotter.XY{X: pt[0], Y: pt[1]}
		if set.Label(i) == dataset.Class1 {
			c1 = append(c1, xy)
		} else {
			c2 = append(c2, xy)
		}
		minX, maxX = math.Min(minX, xy.X), math.Max(maxX, xy.X)
		minY, maxY = math.Min(minY, xy.Y), math.Max(maxY, xy.Y)
	}

	for _, group := range []struct {
		name  string
		pts   plotter.XYs
		color color.Color
		shape draw.GlyphDrawer
	}{
		{dataset.Class1.String(), c1, class1Color, draw.CircleGlyph{}},
		{dataset.Class2.String(), c2, class2Color, draw.CrossGlyph{}},
	} {
		if len(group.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(group.pts)
		if err != nil {
			return nil, fmt.Errorf("plot: %s: %w", group.name, err)
		}
		s.GlyphStyle.Color = group.color
		s.GlyphStyle.Shape = group.shape
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(group.name, s)
	}

	minX, maxX = pad(minX, maxX)
	minY, maxY = pad(minY, maxY)

	if w != nil {
		if err := addBoundary(p, w, minY, maxY); err != nil {
			return nil, err
		}
	}

	p.X.Min, p.X.Max = minX, maxX
	p.Y.Min, p.Y.Max = minY, maxY

	return p, nil
}

// addBoundary draws w₀x + w₁y + w₂ = 0. A zero normal (w₀ = w₁ = 0) has no
// line and is skipped.
func addBoundary(p *gplot.Plot, w vector.Vector, minY, maxY float64) error {
	switch {
	case w[1] != 0:
		fn := plotter.NewFunction(func(x float64) float64 {
			return -(w[0]*x + w[2]) / w[1]
		})
		fn.Color = boundaryColor
		fn.Width = vg.Points(1.5)
		fn.Samples = 2
		p.Add(fn)
		p.Legend.Add("decision boundary", fn)
	case w[0] != 0:
		x := -w[2] / w[0]
		line, err := plotter.NewLine(plotter.XYs{{X: x, Y: minY}, {X: x, Y: maxY}})
		if err != nil {
			return fmt.Errorf("plot: boundary: %w", err)
		}
		line.Color = boundaryColor
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add("decision boundary", line)
	}

	return nil
}

// pad widens [lo, hi] by padFraction, or by 1 on each side when degenerate.
func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		return lo - 1, hi + 1
	}
	return lo - span*padFraction, hi + span*padFraction
}

// Save renders the figure to path; the extension selects the format.
func Save(set *dataset.SampleSet, w vector.Vector, path string, opts Options) error {
	p, err := New(set, w, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}

	return nil
}

// Render writes the figure to out in the given format ("png", "svg", ...).
func Render(set *dataset.SampleSet, w vector.Vector, out io.Writer, format string, opts Options) error {
	p, err := New(set, w, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if _, err := wt.WriteTo(out); err != nil {
		return fmt.Errorf("plot: write: %w", err)
	}

	return nil
}
