package report

import (
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/ringtsp/tsp"
)

// PlotSize is the edge length of the square plot.
const PlotSize = 6 * vg.Inch

var (
	cityColor   = color.RGBA{R: 200, A: 255}
	neuronColor = color.RGBA{B: 200, A: 255}
	tourColor   = color.RGBA{G: 140, A: 255}
)

// PlotRing saves a picture of ring and tour to path. The image format
// follows the extension (png, svg, pdf, ...).
func PlotRing(ring *tsp.NeuralRing, tour []int, path string) error {
	p, err := ringPlot(ring, tour)
	if err != nil {
		return err
	}
	if err = p.Save(PlotSize, PlotSize, path); err != nil {
		return errors.Wrapf(err, "save plot %q", path)
	}
	return nil
}

// WriteRingPlot is PlotRing for an io.Writer; format is an extension without
// the dot, e.g. "svg".
func WriteRingPlot(w io.Writer, ring *tsp.NeuralRing, tour []int, format string) error {
	p, err := ringPlot(ring, tour)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(PlotSize, PlotSize, strings.ToLower(format))
	if err != nil {
		return errors.Wrapf(err, "plot format %q", format)
	}
	_, err = wt.WriteTo(w)
	return err
}

// PlotFormat returns the format implied by a file name.
func PlotFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func ringPlot(ring *tsp.NeuralRing, tour []int) (*plot.Plot, error) {
	if ring == nil {
		return nil, errors.New("report: nil ring")
	}
	cities := ring.Cities()
	if err := tsp.ValidateTour(tour, len(cities), 0); err != nil {
		return nil, errors.Wrap(err, "plot tour")
	}

	p := plot.New()
	p.Title.Text = "Neural ring"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	neurons := ring.Neurons()
	ringXY := make(plotter.XYs, len(neurons)+1)
	for i, pt := range neurons {
		ringXY[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	ringXY[len(neurons)] = ringXY[0]

	tourXY := make(plotter.XYs, len(tour))
	for i, c := range tour {
		tourXY[i] = plotter.XY{X: cities[c].X, Y: cities[c].Y}
	}

	cityXY := make(plotter.XYs, len(cities))
	names := make([]string, len(cities))
	for i, pt := range cities {
		cityXY[i] = plotter.XY{X: pt.X, Y: pt.Y}
		names[i] = strconv.Itoa(i + 1)
	}

	ringLine, err := plotter.NewLine(ringXY)
	if err != nil {
		return nil, errors.Wrap(err, "ring line")
	}
	ringLine.LineStyle.Color = neuronColor
	ringLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	tourLine, err := plotter.NewLine(tourXY)
	if err != nil {
		return nil, errors.Wrap(err, "tour line")
	}
	tourLine.LineStyle.Color = tourColor
	tourLine.LineStyle.Width = vg.Points(2)

	dots, err := plotter.NewScatter(cityXY)
	if err != nil {
		return nil, errors.Wrap(err, "cities")
	}
	dots.GlyphStyle.Color = cityColor
	dots.GlyphStyle.Radius = vg.Points(4)
	dots.GlyphStyle.Shape = draw.CircleGlyph{}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: cityXY, Labels: names})
	if err != nil {
		return nil, errors.Wrap(err, "city labels")
	}

	p.Add(ringLine, tourLine, dots, labels)
	p.Legend.Add("neurons", ringLine)
	p.Legend.Add("tour", tourLine)
	p.Legend.Add("cities", dots)

	lim := tsp.NeuronRadius + 1
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim

	return p, nil
}
