// Command localstats computes a windowed statistic over a grayscale image and
// reports its range over the interior, optionally timing the naive engine
// against the separable one.
//
// Usage:
//
//	localstats [-stat average|variance|stddev|rms_contrast] [-k 31 | -kr R -kc C]
//	           [-method fast|naive] [-compare] [-print] image
//
// PNG, JPEG, GIF, TIFF and BMP inputs are accepted; color images are reduced
// to 16-bit luminance.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/katalvlaran/localstats/accum"
	"github.com/katalvlaran/localstats/filter"
	"github.com/katalvlaran/localstats/grid"
)

type config struct {
	kind    accum.Kind
	method  filter.Method
	krows   int
	kcols   int
	compare bool
	print   bool
	path    string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("localstats: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var c config

	fs := flag.NewFlagSet("localstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: localstats [-stat name] [-k size | -kr rows -kc cols] [-method fast|naive] [-compare] [-print] image\n")
		fs.PrintDefaults()
	}
	stat := fs.String("stat", "rms_contrast", "Statistic: average, variance, stddev or rms_contrast.")
	k := fs.Int("k", 31, "Square window size.")
	kr := fs.Int("kr", 0, "Window rows (overrides -k).")
	kc := fs.Int("kc", 0, "Window cols (overrides -k).")
	method := fs.String("method", "fast", "Engine: fast or naive.")
	fs.BoolVar(&c.compare, "compare", false, "Run both engines, report the speedup and the largest difference.")
	fs.BoolVar(&c.print, "print", false, "Print the resulting grid.")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return c, fmt.Errorf("expected one image argument, got %d", fs.NArg())
	}
	c.path = fs.Arg(0)

	var err error
	if c.kind, err = accum.ParseKind(*stat); err != nil {
		return c, err
	}
	if c.method, err = filter.ParseMethod(*method); err != nil {
		return c, err
	}
	c.krows, c.kcols = *k, *k
	if *kr > 0 {
		c.krows = *kr
	}
	if *kc > 0 {
		c.kcols = *kc
	}

	return c, nil
}

func load(path string) ([]uint16, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding image %s: %w", path, err)
	}
	p, rows, cols := grid.FromImage(img)

	return p, rows, cols, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	p, rows, cols, err := load(c.path)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "image:\t%dx%d\n", cols, rows)
	fmt.Fprintf(stdout, "window:\t%dx%d\n", c.kcols, c.krows)
	fmt.Fprintf(stdout, "stat:\t%v\n", c.kind)

	q := make([]float64, rows*cols)
	start := time.Now()
	r, err := filter.Compute(c.method, c.kind, p, q, rows, cols, c.krows, c.kcols, filter.WithStrictWindow())
	if err != nil {
		return err
	}
	t1 := time.Since(start)

	lo, hi, _ := grid.MinMax(q, cols, r)
	fmt.Fprintf(stdout, "interior:\t%v\n", r)
	fmt.Fprintf(stdout, "min:\t%g\tmax:\t%g\n", lo, hi)
	fmt.Fprintf(stdout, "%v:\t%v\n", c.method, t1)

	if c.compare {
		other := filter.MethodNaive
		if c.method == filter.MethodNaive {
			other = filter.MethodFast
		}
		q2 := make([]float64, rows*cols)
		start = time.Now()
		if _, err = filter.Compute(other, c.kind, p, q2, rows, cols, c.krows, c.kcols); err != nil {
			return err
		}
		t2 := time.Since(start)

		var diff float64
		r.Each(func(i, j int) {
			idx := grid.Index(i, j, cols)
			diff = math.Max(diff, math.Abs(q[idx]-q2[idx]))
		})
		fmt.Fprintf(stdout, "%v:\t%v\n", other, t2)
		fmt.Fprintf(stdout, "maxdiff:\t%g\n", diff)

		naive, fast := t1, t2
		if c.method == filter.MethodFast {
			naive, fast = t2, t1
		}
		if fast > 0 {
			fmt.Fprintf(stdout, "speedup:\t%.1fX\n", float64(naive)/float64(fast))
		}
	}

	if c.print {
		return grid.Print(stdout, q, rows, cols)
	}

	return nil
}
