// Command somtrain trains a Self-Organizing Map on random colors and
// writes the resulting color map as a PNG. With -before and -curves it
// also snapshots the untrained lattice and plots the decay schedules,
// making the topological ordering of the trained map easy to eyeball.
package main

import (
	"flag"
	"log"

	"github.com/antoinehirtz/Math-of-Intelligence/dataset"
	"github.com/antoinehirtz/Math-of-Intelligence/lattice"
	"github.com/antoinehirtz/Math-of-Intelligence/render"
	"github.com/antoinehirtz/Math-of-Intelligence/som"
)

func main() {
	var (
		width   = flag.Int("width", 32, "lattice width")
		height  = flag.Int("height", 32, "lattice height")
		iters   = flag.Int("iters", 100, "training epochs")
		samples = flag.Int("samples", 20, "number of random color samples")
		seed    = flag.Int64("seed", 42, "random seed (0 = fixed default)")
		workers = flag.Int("workers", 1, "goroutines per BMU scan")
		scale   = flag.Int("scale", 8, "pixels per lattice cell in the output")
		out     = flag.String("out", "som.png", "trained map output path")
		before  = flag.String("before", "", "optional untrained map output path")
		curves  = flag.String("curves", "", "optional decay-schedule plot path")
		quiet   = flag.Bool("quiet", false, "suppress per-epoch progress")
	)
	flag.Parse()

	l, err := lattice.New(*width, *height, 3, lattice.WithSeed(*seed))
	if err != nil {
		log.Fatalf("lattice: %v", err)
	}

	if *before != "" {
		img, err := render.RGBImage(l, *scale)
		if err != nil {
			log.Fatalf("render before: %v", err)
		}
		if err := render.SavePNG(*before, img); err != nil {
			log.Fatalf("save before: %v", err)
		}
		log.Printf("wrote untrained map to %s", *before)
	}

	colors, err := dataset.RandomColors(*samples, *seed)
	if err != nil {
		log.Fatalf("dataset: %v", err)
	}

	opts := som.Options{
		NumIterations: *iters,
		Workers:       *workers,
	}
	if !*quiet {
		opts.OnEpoch = func(t int, radius, lr float64) error {
			if t%10 == 0 {
				log.Printf("epoch %d: radius=%.3f lr=%.4f", t, radius, lr)
			}
			return nil
		}
	}
	tr, err := som.New(l, opts)
	if err != nil {
		log.Fatalf("trainer: %v", err)
	}

	if err := tr.Train(colors); err != nil {
		log.Fatalf("train: %v", err)
	}

	img, err := render.RGBImage(l, *scale)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := render.SavePNG(*out, img); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("wrote trained map to %s", *out)

	if *curves != "" {
		if err := render.ScheduleCurves(tr.Schedule(), *curves); err != nil {
			log.Fatalf("curves: %v", err)
		}
		log.Printf("wrote decay curves to %s", *curves)
	}
}
