// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsort/catalog"
	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/dataset"
)

// Bench defaults.
const (
	defaultRuns         = 3
	defaultSeed         = 42
	defaultMaxQuadratic = 5000
	defaultJobs         = 1
)

type benchOptions struct {
	sizes        []int
	shape        string
	runs         int
	seed         int64
	maxQuadratic int
	jobs         int
	family       string
	asJSON       bool
}

// BenchmarkResult is one (algorithm, size) measurement.
type BenchmarkResult struct {
	Algorithm   string        `json:"algorithm"`
	Family      string        `json:"family"`
	Shape       string        `json:"shape"`
	DataSize    int           `json:"data_size"`
	Runs        int           `json:"runs"`
	Best        time.Duration `json:"best_ns"`
	Mean        time.Duration `json:"mean_ns"`
	Comparisons int           `json:"comparisons"`
	Writes      int           `json:"writes"`
	Skipped     string        `json:"skipped,omitempty"`
}

// BenchmarkReport is the JSON document written by `bench --json`.
type BenchmarkReport struct {
	GOOS     string            `json:"goos"`
	GOARCH   string            `json:"goarch"`
	CPUs     int               `json:"cpus"`
	Features []string          `json:"cpu_features"`
	Results  []BenchmarkResult `json:"results"`
}

func newBenchCmd() *cobra.Command {
	var o benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm on generated inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.Context(), cmd.OutOrStdout(), o)
		},
	}
	addBenchFlags(cmd.Flags(), &o)

	return cmd
}

func addBenchFlags(fs *pflag.FlagSet, o *benchOptions) {
	shapes := lo.Map(dataset.Shapes(), func(s dataset.Shape, _ int) string { return string(s) })
	fs.IntSliceVar(&o.sizes, "sizes", []int{1000, 10000}, "input sizes")
	fs.StringVar(&o.shape, "shape", string(dataset.Random), "input shape ("+strings.Join(shapes, ", ")+")")
	fs.IntVar(&o.runs, "runs", defaultRuns, "timed runs per algorithm and size")
	fs.Int64Var(&o.seed, "seed", defaultSeed, "dataset seed")
	fs.IntVar(&o.maxQuadratic, "max-quadratic", defaultMaxQuadratic, "skip O(n²) algorithms above this size")
	fs.IntVar(&o.jobs, "jobs", defaultJobs, "measurements run concurrently (timings interfere above 1)")
	fs.StringVar(&o.family, "family", "", "only benchmark one family")
	fs.BoolVar(&o.asJSON, "json", false, "write JSON instead of a markdown table")
}

func (o benchOptions) validate() error {
	switch {
	case len(o.sizes) == 0:
		return fmt.Errorf("--sizes: at least one size required")
	case lo.SomeBy(o.sizes, func(n int) bool { return n < 0 }):
		return fmt.Errorf("--sizes: sizes must be non-negative, got %v", o.sizes)
	case o.runs < 1:
		return fmt.Errorf("--runs: must be >= 1, got %d", o.runs)
	case o.jobs < 1:
		return fmt.Errorf("--jobs: must be >= 1, got %d", o.jobs)
	}

	return nil
}

// benchJob is one (algorithm, size) cell of the result table.
type benchJob struct {
	alg  catalog.Algorithm
	size int
}

func runBench(ctx context.Context, w io.Writer, o benchOptions) error {
	if err := o.validate(); err != nil {
		return err
	}
	shape, err := dataset.ParseShape(o.shape)
	if err != nil {
		return err
	}
	algs := catalog.All()
	if o.family != "" {
		algs = catalog.ByFamily(catalog.Family(o.family))
		if len(algs) == 0 {
			return fmt.Errorf("unknown family %q", o.family)
		}
	}

	inputs := make(map[int][]int, len(o.sizes))
	for _, n := range lo.Uniq(o.sizes) {
		if inputs[n], err = dataset.Build(shape, n, dataset.WithSeed(o.seed)); err != nil {
			return err
		}
	}

	var jobs []benchJob
	for _, a := range algs {
		for _, n := range o.sizes {
			jobs = append(jobs, benchJob{alg: a, size: n})
		}
	}

	// Each job writes only its own slot; inputs are read-only and every
	// adapter sorts a copy.
	results := make([]BenchmarkResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.jobs)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := measure(job, inputs[job.size], shape, o)
			if err != nil {
				return err
			}
			results[i] = r

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	if o.asJSON {
		return writeJSON(w, results)
	}
	writeMarkdown(w, results)

	return nil
}

// measure times one job, or explains why it was skipped.
func measure(job benchJob, in []int, shape dataset.Shape, o benchOptions) (BenchmarkResult, error) {
	r := BenchmarkResult{
		Algorithm: job.alg.Name,
		Family:    string(job.alg.Family),
		Shape:     string(shape),
		DataSize:  job.size,
	}
	switch {
	case job.alg.Quadratic && job.size > o.maxQuadratic:
		r.Skipped = fmt.Sprintf("quadratic, n > %d", o.maxQuadratic)
		return r, nil
	case job.alg.Precondition == catalog.PowerOfTwo && job.size&(job.size-1) != 0:
		r.Skipped = "needs power-of-two length"
		return r, nil
	}

	// One instrumented run for the counters, then plain timed runs.
	var st core.Stats
	if _, err := job.alg.Sort(in, core.WithStats(&st)); err != nil {
		r.Skipped = err.Error()
		return r, nil
	}
	r.Comparisons, r.Writes = st.Comparisons, st.Writes

	var total time.Duration
	for run := 0; run < o.runs; run++ {
		start := time.Now()
		if _, err := job.alg.Sort(in); err != nil {
			return r, fmt.Errorf("%s n=%d: %w", job.alg.Name, job.size, err)
		}
		d := time.Since(start)
		total += d
		if run == 0 || d < r.Best {
			r.Best = d
		}
	}
	r.Runs = o.runs
	r.Mean = total / time.Duration(o.runs)

	return r, nil
}

func writeJSON(w io.Writer, results []BenchmarkResult) error {
	report := BenchmarkReport{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
		Features: cpuFeatures(),
		Results:  results,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

func writeMarkdown(w io.Writer, results []BenchmarkResult) {
	fmt.Fprintf(w, "# sortlab bench\n\n")
	fmt.Fprintf(w, "- platform: %s/%s, %d CPUs\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	fmt.Fprintf(w, "- cpu features: %s\n\n", strings.Join(cpuFeatures(), " "))
	fmt.Fprintf(w, "| algorithm | family | shape | n | best | mean | comparisons | writes |\n")
	fmt.Fprintf(w, "|---|---|---|---:|---:|---:|---:|---:|\n")
	for _, r := range results {
		if r.Skipped != "" {
			fmt.Fprintf(w, "| %s | %s | %s | %d | skipped: %s | | | |\n", r.Algorithm, r.Family, r.Shape, r.DataSize, r.Skipped)
			continue
		}
		fmt.Fprintf(w, "| %s | %s | %s | %d | %v | %v | %d | %d |\n",
			r.Algorithm, r.Family, r.Shape, r.DataSize, r.Best, r.Mean, r.Comparisons, r.Writes)
	}
}
