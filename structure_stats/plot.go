package structure_stats

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var errNoResidues = errors.New("no residues to plot")

// IntegerTicks labels every whole residue step, thinned so long chains stay
// readable.
type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	step := int(math.Ceil((max - min) / 20))
	if step < 1 {
		step = 1
	}
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i += step {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// ConfidencePlotSVG draws per-residue confidence with the tier boundaries
// and returns it as an SVG document.
func ConfidencePlotSVG(profile []ResidueConfidence) (string, error) {
	if len(profile) == 0 {
		return "", errNoResidues
	}

	p := plot.New()
	p.Title.Text = "Per-Residue Confidence (pLDDT)"
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "Confidence"
	p.Y.Min = 0
	p.Y.Max = 100
	p.X.Tick.Marker = IntegerTicks{}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(profile))
	for i, r := range profile {
		pts[i].X = float64(i + 1)
		pts[i].Y = r.Confidence
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("pLDDT", line)

	// Tier boundaries
	bounds := []struct {
		value float64
		label string
		color color.RGBA
	}{
		{90, string(TierVeryHigh), color.RGBA{G: 120, B: 200, A: 255}},
		{70, string(TierHigh), color.RGBA{R: 100, G: 180, B: 255, A: 255}},
		{DisorderThreshold, string(TierMedium), color.RGBA{R: 255, G: 165, A: 255}},
	}
	for _, b := range bounds {
		ref, err := plotter.NewLine(plotter.XYs{{X: 1, Y: b.value}, {X: float64(len(profile)), Y: b.value}})
		if err != nil {
			return "", err
		}
		ref.Color = b.color
		ref.Width = vg.Points(1)
		ref.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(ref)
		p.Legend.Add(b.label, ref)
	}
	p.Legend.Top = true

	return renderSVG(p)
}

// ConfidenceHistogramSVG bins per-residue confidence in steps of 5 and
// overlays the normal curve with the same mean and standard deviation.
// The curve is left out when every residue has the same confidence.
func ConfidenceHistogramSVG(profile []ResidueConfidence) (string, error) {
	if len(profile) == 0 {
		return "", errNoResidues
	}

	p := plot.New()
	p.Title.Text = "Confidence Distribution"
	p.X.Label.Text = "Confidence (pLDDT)"
	p.Y.Label.Text = "Residue Count"
	p.X.Min = 0
	p.X.Max = 100

	// Observed histogram
	const binCount = 20
	binWidth := 100.0 / binCount
	observed := make([]float64, binCount)
	values := make([]float64, len(profile))
	for i, r := range profile {
		values[i] = r.Confidence
		bin := int(r.Confidence / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		if bin < 0 {
			bin = 0
		}
		observed[bin]++
	}

	observedXY := make(plotter.XYs, binCount)
	for i := range observed {
		observedXY[i].X = binWidth*float64(i) + binWidth/2
		observedXY[i].Y = observed[i]
	}
	obsLine, err := plotter.NewLine(observedXY)
	if err != nil {
		return "", err
	}
	obsLine.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	obsLine.Width = vg.Points(2)
	p.Add(obsLine)
	p.Legend.Add("Observed", obsLine)

	// Modelled normal, scaled to the observed total
	mean, stddev := stat.MeanStdDev(values, nil)
	if len(values) > 1 && stddev > 0 {
		normDist := distuv.Normal{Mu: mean, Sigma: stddev}
		scaleFactor := float64(len(values)) * binWidth
		expectedXY := make(plotter.XYs, binCount)
		for i := range expectedXY {
			x := binWidth*float64(i) + binWidth/2
			expectedXY[i].X = x
			expectedXY[i].Y = normDist.Prob(x) * scaleFactor
		}
		expLine, err := plotter.NewLine(expectedXY)
		if err != nil {
			return "", err
		}
		expLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
		expLine.Width = vg.Points(2)
		expLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(expLine)
		p.Legend.Add("Modelled Normal", expLine)
	}
	p.Legend.Top = true

	return renderSVG(p)
}

func renderSVG(p *plot.Plot) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
