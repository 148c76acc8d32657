// Command simdbench evaluates weighted cosine series with every available
// strategy, checks that the strategies agree and benchmarks them.
//
// Usage:
//
//	simdbench [flags]
//
// Without mode flags it evaluates the reference series at -t with each
// selected strategy and prints the results side by side.
//
// Examples:
//
//	simdbench
//	simdbench -t 2000 -strategy naive,vector
//	simdbench -check -span 500 -steps 100000 -workers 8
//	simdbench -bench
//	simdbench -lanes
//	simdbench -spectrum 4096
//	simdbench -generic -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"
	"text/tabwriter"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/berquist/simd-examples/internal/cpu"
	"github.com/berquist/simd-examples/lanes"
	"github.com/berquist/simd-examples/series"
	"github.com/berquist/simd-examples/series/refdata"
	"github.com/berquist/simd-examples/spectrum"
)

// errDivergence is returned by -check when two strategies disagree by more
// than series.Tolerance.
var errDivergence = errors.New("strategies diverge")

type options struct {
	t          float64
	strategies string
	list       bool
	check      bool
	span       float64
	steps      int
	workers    int
	bench      bool
	lanes      bool
	spectrum   int
	generic    bool
}

func main() {
	var opts options

	flag.Float64Var(&opts.t, "t", refdata.Epoch, "evaluation time")
	flag.StringVar(&opts.strategies, "strategy", "", "comma-separated strategies (default: all available)")
	flag.BoolVar(&opts.list, "list", false, "list strategies and their availability")
	flag.BoolVar(&opts.check, "check", false, "sweep [t, t+span] and report the largest divergence from naive")
	flag.Float64Var(&opts.span, "span", 100, "length of the -check time span")
	flag.IntVar(&opts.steps, "steps", 10000, "number of -check time points")
	flag.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "concurrent -check workers")
	flag.BoolVar(&opts.bench, "bench", false, "benchmark the selected strategies on the reference series")
	flag.BoolVar(&opts.lanes, "lanes", false, "print lane sizes and pair/quad addition results")
	flag.IntVar(&opts.spectrum, "spectrum", 0, "analyse the reference series with this many samples starting at -t")
	flag.BoolVar(&opts.generic, "generic", false, "disable every vector extension")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: simdbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates, cross-checks and benchmarks weighted cosine series strategies.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  simdbench -t 2000 -strategy naive,vector\n")
		fmt.Fprintf(os.Stderr, "  simdbench -check -span 500 -workers 8\n")
		fmt.Fprintf(os.Stderr, "  simdbench -bench\n")
		fmt.Fprintf(os.Stderr, "  simdbench -lanes\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), os.Stdout, logger, opts); err != nil {
		logger.Error("simdbench failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, logger *slog.Logger, opts options) error {
	if opts.generic {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true, Architecture: runtime.GOARCH})
		defer cpu.ResetDetection()
	}

	features := cpu.DetectFeatures()
	logger.Debug("processor",
		"arch", features.Architecture,
		"sse2", features.HasSSE2,
		"avx", features.HasAVX,
		"avx2", features.HasAVX2,
		"generic", features.ForceGeneric,
		"native", series.NativeBackend(),
	)

	if opts.list {
		printList(w)
		return nil
	}

	if opts.lanes {
		printLanes(w)
		return nil
	}

	strategies, err := resolveStrategies(opts.strategies, logger)
	if err != nil {
		return err
	}

	s := refdata.A0()

	switch {
	case opts.check:
		return runCheck(ctx, w, logger, s, strategies, opts)
	case opts.bench:
		printBench(w, s, strategies)
		return nil
	case opts.spectrum > 0:
		return printSpectrum(w, s, strategies[0], opts)
	default:
		printEvaluate(w, s, opts.t, strategies)
		return nil
	}
}

// resolveStrategies parses a comma-separated list. Unavailable strategies
// are dropped with a warning; an empty list selects every available one.
func resolveStrategies(list string, logger *slog.Logger) ([]series.Strategy, error) {
	var requested []series.Strategy
	if strings.TrimSpace(list) == "" {
		requested = series.Strategies()
	} else {
		for _, name := range strings.Split(list, ",") {
			st, err := series.ParseStrategy(name)
			if err != nil {
				return nil, fmt.Errorf("-strategy: %w", err)
			}
			requested = append(requested, st)
		}
	}

	var out []series.Strategy
	for _, st := range requested {
		if !st.Available() {
			logger.Warn("strategy unavailable on this processor", "strategy", st)
			continue
		}
		out = append(out, st)
	}

	if len(out) == 0 {
		return nil, errors.New("no available strategy selected")
	}

	return out, nil
}

func printList(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Strategy\tAvailable\n")
	for _, st := range series.Strategies() {
		fmt.Fprintf(tw, "%s\t%t\n", st, st.Available())
	}
	fmt.Fprintf(tw, "block\t%t\n", true)
	tw.Flush()

	fmt.Fprintf(w, "\nnative backend: %s\n", series.NativeBackend())

	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "processor: arch=%s sse2=%t avx=%t avx2=%t avx512=%t neon=%t generic=%t\n",
		f.Architecture, f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON, f.ForceGeneric)
}

func printEvaluate(w io.Writer, s series.Series, t float64, strategies []series.Strategy) {
	ref := series.Evaluate(t, s)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Strategy\tValue\tDiff vs naive\t\n")
	for _, st := range strategies {
		v := st.Evaluate(t, s)
		fmt.Fprintf(tw, "%s\t%.15f\t%.3g\t\n", st, v, v-ref)
	}
	v := series.NewBlockEvaluator(s).Evaluate(t)
	fmt.Fprintf(tw, "%s\t%.15f\t%.3g\t\n", "block", v, v-ref)
	tw.Flush()
}

// sweep evaluates s at steps points spread over [t0, t0+span] with every
// strategy and returns the largest absolute difference from Evaluate.
func sweep(ctx context.Context, s series.Series, strategies []series.Strategy, t0, span float64, steps, workers int) (float64, error) {
	if steps < 1 {
		return 0, fmt.Errorf("steps must be >= 1, got %d", steps)
	}
	if workers < 1 {
		workers = 1
	}

	dt := 0.0
	if steps > 1 {
		dt = span / float64(steps-1)
	}

	var (
		mu      sync.Mutex
		maxDiff float64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (steps + workers - 1) / workers
	for lo := 0; lo < steps; lo += chunk {
		hi := min(lo+chunk, steps)
		g.Go(func() error {
			local := 0.0
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				t := t0 + float64(i)*dt
				ref := series.Evaluate(t, s)
				for _, st := range strategies {
					local = math.Max(local, math.Abs(st.Evaluate(t, s)-ref))
				}
			}

			mu.Lock()
			maxDiff = math.Max(maxDiff, local)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return maxDiff, nil
}

func runCheck(ctx context.Context, w io.Writer, logger *slog.Logger, s series.Series, strategies []series.Strategy, opts options) error {
	logger.Debug("check sweep", "t0", opts.t, "span", opts.span, "steps", opts.steps, "workers", opts.workers)

	diff, err := sweep(ctx, s, strategies, opts.t, opts.span, opts.steps, opts.workers)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	fmt.Fprintf(w, "max |diff| over %d points in [%g, %g]: %.3g (tolerance %g)\n",
		opts.steps, opts.t, opts.t+opts.span, diff, series.Tolerance)

	if diff > series.Tolerance {
		return fmt.Errorf("check: %w: %.3g > %g", errDivergence, diff, series.Tolerance)
	}

	return nil
}

var benchSink float64

func printBench(w io.Writer, s series.Series, strategies []series.Strategy) {
	t := refdata.Epoch

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Strategy\tns/op\tallocs/op\t\n")

	row := func(name string, fn func()) {
		res := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				fn()
			}
		})
		fmt.Fprintf(tw, "%s\t%d\t%d\t\n", name, res.NsPerOp(), res.AllocsPerOp())
	}

	for _, st := range strategies {
		eval := st.Func()
		row(st.String(), func() { benchSink = eval(t, s) })
	}

	block := series.NewBlockEvaluator(s)
	row("block", func() { benchSink = block.Evaluate(t) })

	tw.Flush()
}

func printLanes(w io.Writer) {
	fmt.Fprintln(w, unsafe.Sizeof(float64(0)))
	fmt.Fprintln(w, unsafe.Sizeof(lanes.Pair{}))
	fmt.Fprintln(w, unsafe.Sizeof(lanes.Quad{}))

	v1 := lanes.Pair{1, 2}
	v2 := lanes.Pair{3, 4}

	fmt.Fprintln(w, "SSE2 addition of length 2 vectors")
	res := lanes.Pair{}
	fmt.Fprintln(w, res[0], res[1])
	res = lanes.AddPair(v1, v2)
	fmt.Fprintln(w, res[0], res[1])
	res = lanes.Pair{}
	fmt.Fprintln(w, res[0], res[1])
	res = lanes.AddPairVec(v1, v2)
	fmt.Fprintln(w, res[0], res[1])

	v3 := lanes.Quad{1, 2, 3, 4}
	v4 := lanes.Quad{5, 6, 7, 8}

	fmt.Fprintln(w, "AVX addition of length 4 vectors")
	res2 := lanes.Quad{}
	fmt.Fprintln(w, res2[0], res2[1], res2[2], res2[3])
	res2 = lanes.AddQuad(v3, v4)
	fmt.Fprintln(w, res2[0], res2[1], res2[2], res2[3])
	res2 = lanes.Quad{}
	fmt.Fprintln(w, res2[0], res2[1], res2[2], res2[3])
	if lanes.Accelerated && !cpu.HasAVX() {
		fmt.Fprintln(w, "skipped: processor lacks AVX")
		return
	}
	res2 = lanes.AddQuadVec(v3, v4)
	fmt.Fprintln(w, res2[0], res2[1], res2[2], res2[3])
}

func printSpectrum(w io.Writer, s series.Series, st series.Strategy, opts options) error {
	res, err := spectrum.Analyze(s,
		spectrum.WithSamples(opts.spectrum),
		spectrum.WithStart(opts.t),
		spectrum.WithStrategy(st),
	)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Bin\tRate (rad/unit)\tAmplitude\tLevel (dB)\t\n")
	for _, p := range res.Peaks {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6g\t%.2f\t\n", p.Bin, p.Rate, p.Amplitude, p.LevelDB)
	}
	tw.Flush()

	return nil
}
