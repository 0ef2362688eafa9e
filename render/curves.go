package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/antoinehirtz/Math-of-Intelligence/som"
)

// ScheduleCurves plots the neighborhood-radius and learning-rate decay of
// a full training run, one point per epoch, and saves the figure as PNG.
func ScheduleCurves(s som.Schedule, path string) error {
	n := s.NumIterations()

	radius := make(plotter.XYs, n)
	lr := make(plotter.XYs, n)
	for t := 0; t < n; t++ {
		radius[t] = plotter.XY{X: float64(t), Y: s.NeighborhoodRadius(t)}
		lr[t] = plotter.XY{X: float64(t), Y: s.LearningRate(t)}
	}

	p := plot.New()
	p.Title.Text = "SOM decay schedules"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "value"

	rLine, err := plotter.NewLine(radius)
	if err != nil {
		return fmt.Errorf("render: radius line: %w", err)
	}
	lrLine, err := plotter.NewLine(lr)
	if err != nil {
		return fmt.Errorf("render: learning-rate line: %w", err)
	}
	lrLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(rLine, lrLine)
	p.Legend.Add("neighborhood radius", rLine)
	p.Legend.Add("learning rate", lrLine)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render: saving %s: %w", path, err)
	}

	return nil
}
