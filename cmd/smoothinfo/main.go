// Command smoothinfo smooths scatter data and prints the fitted table.
//
// Usage:
//
//	smoothinfo [flags] [file.csv]
//
// The input is CSV with one "x,y" pair per row (a header row is skipped
// automatically); without a file argument, stdin is read, and with -demo a
// noisy sine sample is generated instead.
//
// Examples:
//
//	smoothinfo -frac 0.3 -boot 200 data.csv
//	smoothinfo -demo 500 -frac 0.2 -alpha 0.1 -seed 42
//	smoothinfo -poly -order 3 data.csv
//	smoothinfo -kernels
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/internal/testutil"
	"github.com/cwbudde/algo-smooth/smooth/curve"
	"github.com/cwbudde/algo-smooth/smooth/kernel"
	"github.com/cwbudde/algo-smooth/smooth/lowess"
	"github.com/cwbudde/algo-smooth/smooth/polyfit"
)

type kernelEntry struct {
	name string
	typ  kernel.Type
}

var kernelRegistry = []kernelEntry{
	{"tricube", kernel.TypeTricube},
	{"bisquare", kernel.TypeBisquare},
	{"epanechnikov", kernel.TypeEpanechnikov},
	{"triangle", kernel.TypeTriangle},
	{"uniform", kernel.TypeUniform},
	{"gauss", kernel.TypeGauss},
}

func main() {
	frac := flag.Float64("frac", 2.0/3.0, "fraction of the sample per local window")
	gridSize := flag.Int("gridsize", 100, "number of evaluation points")
	it := flag.Int("it", 3, "robustness iterations")
	delta := flag.Float64("delta", 0, "x-distance below which grid fits are interpolated")
	boot := flag.Int("boot", 0, "bootstrap resample count (0 disables intervals)")
	alpha := flag.Float64("alpha", math.NaN(), "two-sided tail probability for intervals")
	seed := flag.Int64("seed", -1, "bootstrap seed (-1 uses a fresh seed)")
	kern := flag.String("kernel", "tricube", "weighting kernel (see -kernels)")
	poly := flag.Bool("poly", false, "use a global polynomial fit instead of lowess")
	order := flag.Int("order", 2, "polynomial degree (with -poly)")
	demo := flag.Int("demo", 0, "generate a noisy sine sample of this size instead of reading input")
	kernels := flag.Bool("kernels", false, "list available kernels and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: smoothinfo [flags] [file.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Smooths x,y scatter data and prints the fitted table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -frac 0.3 -boot 200 data.csv\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -demo 500 -alpha 0.1 -seed 42\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -poly -order 3 data.csv\n")
	}
	flag.Parse()

	if *kernels {
		printKernels()
		return
	}

	sample, err := loadSample(flag.Arg(0), *demo, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var fit curve.Curve
	switch {
	case *poly:
		fit, err = runPolyFit(sample, *order, *gridSize, *alpha)
	default:
		fit, err = runLowess(sample, *frac, *gridSize, *it, *delta, *boot, *alpha, *seed, *kern)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printCurve(fit)
}

func runLowess(s curve.Sample, frac float64, gridSize, it int, delta float64, boot int, alpha float64, seed int64, kern string) (curve.Curve, error) {
	opts := []lowess.Option{
		lowess.WithFrac(frac),
		lowess.WithGridSize(gridSize),
		lowess.WithIterations(it),
		lowess.WithDelta(delta),
	}
	kt, err := kernelByName(kern)
	if err != nil {
		return curve.Curve{}, err
	}
	opts = append(opts, lowess.WithKernel(kt))
	if boot > 0 {
		opts = append(opts, lowess.WithBootstrap(boot))
	}
	if !math.IsNaN(alpha) {
		opts = append(opts, lowess.WithAlpha(alpha))
	}
	if seed >= 0 {
		opts = append(opts, lowess.WithSeed(seed))
	}

	sm, err := lowess.New(opts...)
	if err != nil {
		return curve.Curve{}, err
	}
	return sm.Fit(s)
}

func runPolyFit(s curve.Sample, order, gridSize int, alpha float64) (curve.Curve, error) {
	opts := []polyfit.Option{
		polyfit.WithOrder(order),
		polyfit.WithGridSize(gridSize),
	}
	if !math.IsNaN(alpha) {
		opts = append(opts, polyfit.WithAlpha(alpha))
	}
	pf, err := polyfit.New(opts...)
	if err != nil {
		return curve.Curve{}, err
	}
	return pf.Fit(s)
}

func kernelByName(name string) (kernel.Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range kernelRegistry {
		if e.name == name {
			return e.typ, nil
		}
	}
	return 0, fmt.Errorf("unknown kernel %q (use -kernels to see available)", name)
}

func printKernels() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tCompact Support\tEfficiency\n")
	for _, e := range kernelRegistry {
		m := kernel.Info(e.typ)
		fmt.Fprintf(tw, "%s\t%v\t%.3f\n", e.name, m.CompactSupport, m.Efficiency)
	}
	tw.Flush()
}

func loadSample(path string, demo int, seed int64) (curve.Sample, error) {
	if demo > 0 {
		if seed < 0 {
			seed = 1
		}
		x, y := testutil.NoisySine(seed, 0.3, 4*math.Pi, demo)
		return curve.Sample{X: x, Y: y}, nil
	}

	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return curve.Sample{}, err
		}
		defer f.Close()
		in = f
	}
	return readCSV(in)
}

func readCSV(r io.Reader) (curve.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	var s curve.Sample
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return curve.Sample{}, err
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if row == 0 {
				// header row
				continue
			}
			return curve.Sample{}, fmt.Errorf("row %d: values %q,%q are not numeric", row+1, rec[0], rec[1])
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	return s, nil
}

func printCurve(c curve.Curve) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if c.HasBounds() {
		fmt.Fprintf(tw, "x\ty\tymin\tymax\n")
		for i := range c.X {
			fmt.Fprintf(tw, "%.6g\t%.6g\t%.6g\t%.6g\n", c.X[i], c.Y[i], c.YMin[i], c.YMax[i])
		}
	} else {
		fmt.Fprintf(tw, "x\ty\n")
		for i := range c.X {
			fmt.Fprintf(tw, "%.6g\t%.6g\n", c.X[i], c.Y[i])
		}
	}
	tw.Flush()
}
