// Command som trains one Kohonen map per requested grid shape over a single
// input set and prints each map's weight vectors, one per line, with a blank
// line between maps.
//
// Usage:
//
//	som [-in file] [-dim n] [-grids 4x2,4x4] [-epochs n] [-lr f] [-nbd f]
//	    [-lr-decay f] [-nbd-decay f] [-seed n] [-workers n]
//	    [-per-sample] [-shuffle] [-v] [-stats]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/cjdb01/nnk/dataset"
	"github.com/cjdb01/nnk/som"
)

// gridShape is one WIDTHxHEIGHT entry of -grids.
type gridShape struct {
	width, height int
}

func (s gridShape) String() string { return fmt.Sprintf("%dx%d", s.width, s.height) }

// parseGrids parses a comma-separated list such as "4x2,4x4".
func parseGrids(list string) ([]gridShape, error) {
	var out []gridShape
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		xs, ys, ok := strings.Cut(strings.ToLower(f), "x")
		if !ok {
			return nil, fmt.Errorf("grid %q: want WIDTHxHEIGHT", f)
		}
		w, err := strconv.Atoi(xs)
		if err != nil || w < 1 {
			return nil, fmt.Errorf("grid %q: bad width", f)
		}
		h, err := strconv.Atoi(ys)
		if err != nil || h < 1 {
			return nil, fmt.Errorf("grid %q: bad height", f)
		}
		out = append(out, gridShape{w, h})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no grids in %q", list)
	}

	return out, nil
}

type runConfig struct {
	base      som.Config
	grids     []gridShape
	epochs    int
	seed      int64
	workers   int
	perSample bool
	shuffle   bool
	verbose   bool
	stats     bool
}

// options translates the flags shared by every run into trainer options.
func (rc runConfig) options(run int) []som.Option {
	var opts []som.Option
	if rc.seed != 0 {
		opts = append(opts, som.WithSeed(rc.seed+int64(run)))
	}
	if rc.workers != 1 {
		opts = append(opts, som.WithWorkers(rc.workers))
	}
	if rc.perSample {
		opts = append(opts, som.WithDecayPerSample())
	}
	if rc.shuffle {
		opts = append(opts, som.WithShuffle())
	}
	if rc.verbose {
		shape := rc.grids[run]
		opts = append(opts, som.WithEpochHook(func(s som.EpochStats) {
			log.Printf("%v epoch %d: lr=%g nbd=%g", shape, s.Epoch, s.LearningRate, s.NbdWidth)
		}))
	}

	return opts
}

// run trains every grid over set and writes the maps to w.
func run(ctx context.Context, w io.Writer, set *dataset.Set, rc runConfig) error {
	bw := bufio.NewWriter(w)
	for i, shape := range rc.grids {
		cfg := rc.base
		cfg.Width, cfg.Height = shape.width, shape.height

		tr, err := som.New(set, cfg, rc.options(i)...)
		if err != nil {
			return fmt.Errorf("%v: %w", shape, err)
		}
		if err = tr.TrainContext(ctx, rc.epochs); err != nil {
			return fmt.Errorf("%v: %w", shape, err)
		}
		if rc.stats {
			log.Printf("%v: quantization error %.6g, topographic error %.6g",
				shape, tr.QuantizationError(), tr.TopographicError())
		}

		if i > 0 {
			if _, err = bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if err = tr.Print(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("som: ")

	def := som.DefaultConfig()
	var (
		in        = flag.String("in", "", "input file (default stdin)")
		dim       = flag.Int("dim", def.InputSize, "components per input vector")
		grids     = flag.String("grids", "4x2,4x4,2x3,4x2,1x1", "comma-separated grid shapes, WIDTHxHEIGHT")
		epochs    = flag.Int("epochs", 1, "training epochs per grid")
		lr        = flag.Float64("lr", def.LearningRate, "initial learning rate")
		nbd       = flag.Float64("nbd", def.NbdWidth, "initial neighborhood width")
		lrDecay   = flag.Float64("lr-decay", def.LRDecay, "learning rate decay")
		nbdDecay  = flag.Float64("nbd-decay", def.NbdWidthDecay, "neighborhood width decay")
		seed      = flag.Int64("seed", 0, "random seed (0 = time based)")
		workers   = flag.Int("workers", 1, "Compete workers (0 = one per logical core)")
		perSample = flag.Bool("per-sample", false, "decay after every input vector instead of every epoch")
		shuffle   = flag.Bool("shuffle", false, "shuffle the input order every epoch")
		verbose   = flag.Bool("v", false, "log every epoch")
		stats     = flag.Bool("stats", false, "log map quality after training")
	)
	flag.Parse()

	shapes, err := parseGrids(*grids)
	if err != nil {
		log.Fatalf("-grids: %v", err)
	}
	if *workers < 0 {
		log.Fatalf("-workers: must be >= 0")
	}

	var set *dataset.Set
	if *in != "" {
		set, err = dataset.ReadFile(*in, *dim)
	} else {
		set, err = dataset.Read(os.Stdin, *dim)
	}
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rc := runConfig{
		base: som.Config{
			InputSize:     *dim,
			LearningRate:  *lr,
			NbdWidth:      *nbd,
			LRDecay:       *lrDecay,
			NbdWidthDecay: *nbdDecay,
		},
		grids:     shapes,
		epochs:    *epochs,
		seed:      *seed,
		workers:   *workers,
		perSample: *perSample,
		shuffle:   *shuffle,
		verbose:   *verbose,
		stats:     *stats,
	}
	if err = run(ctx, os.Stdout, set, rc); err != nil {
		log.Fatalf("%v", err)
	}
}
