// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// probplot reads newline-separated numbers from stdin, describes
// their distribution, and renders their empirical CDF on a
// probability-scaled axis.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/probscale/go-probscale/scale"
)

func main() {
	app := &cli.App{
		Name:  "probplot",
		Usage: "plot a sample's empirical CDF on a probability-scaled axis",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scale", Aliases: []string{"s"}, Value: "norm", Usage: "distribution scale `name` (see --list)"},
			&cli.Float64SliceFlag{Name: "args", Usage: "shape arguments for the distribution family"},
			&cli.Float64Flag{Name: "loc", Value: 0, Usage: "location shift applied to the distribution"},
			&cli.Float64Flag{Name: "scale-factor", Value: 1, Usage: "scale stretch applied to the distribution"},
			&cli.StringFlag{Name: "nonpos", Value: "mask", Usage: "out-of-domain policy: mask or clip"},
			&cli.BoolFlag{Name: "percentage", Usage: "label ticks as percentages"},
			&cli.StringFlag{Name: "prefix", Usage: "prefix applied to registered scale names"},
			&cli.BoolFlag{Name: "list", Usage: "list registered scale names and exit"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "probplot.png", Usage: "output image `file` (.png, .svg, .pdf, ...)"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	reg := scale.NewRegistry(c.String("prefix"))
	if c.Bool("list") {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return nil
	}

	xs, err := readInput(os.Stdin)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return errors.New("no input values")
	}
	sort.Float64s(xs)
	printSummary(xs)

	s, err := reg.New(c.String("scale"),
		scale.WithArgs(c.Float64Slice("args")...),
		scale.WithLocScale(c.Float64("loc"), c.Float64("scale-factor")),
		scale.WithNonpos(scale.Nonpos(c.String("nonpos"))),
		scale.WithPercentage(c.Bool("percentage")),
	)
	if err != nil {
		return err
	}
	return render(s, xs, c.String("output"))
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, value)
	}
	return xs, scanner.Err()
}

func printSummary(xs []float64) {
	sum, _ := stats.Sum(xs)
	mean, _ := stats.Mean(xs)
	fmt.Printf("N %d  sum %.6g  mean %.6g", len(xs), sum, mean)
	if gmean, err := stats.GeometricMean(xs); err == nil && !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	sd, _ := stats.StandardDeviation(xs)
	variance, _ := stats.Variance(xs)
	fmt.Printf("  std dev %.6g  variance %.6g\n", sd, variance)
	fmt.Println()

	// Quartiles and tails.
	labels := map[float64]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []float64{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%g%%ile", p)
		}
		var v float64
		switch p {
		case 0:
			v, _ = stats.Min(xs)
		case 100:
			v, _ = stats.Max(xs)
		default:
			v, _ = stats.Percentile(xs, p)
		}
		fmt.Printf("%8s %.6g\n", label, v)
	}
	fmt.Println()
}

func render(s *scale.Scale, xs []float64, out string) error {
	n := len(xs)
	pts := make(plotter.XYs, n)
	for i, x := range xs {
		pts[i].X = x
		// Hazen plotting position.
		pts[i].Y = (float64(i) + 0.5) / float64(n)
	}

	p := plot.New()
	p.Title.Text = s.Name() + " probability plot"
	p.X.Label.Text = "value"
	p.Y.Label.Text = "cumulative probability"
	p.Y.Scale = s.Normalizer()
	p.Y.Tick.Marker = s.Ticker()
	p.Y.Min, p.Y.Max = s.LimitRange(0, 1, 0.5/float64(n))

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), sc)
	return p.Save(6*vg.Inch, 4*vg.Inch, out)
}
