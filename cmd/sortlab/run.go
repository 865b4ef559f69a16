// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsort/catalog"
	"github.com/katalvlaran/lvsort/core"
)

type runOptions struct {
	values []int
	trace  bool
}

func newRunCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run TARGET",
		Short: "Sort a demo or given input with one algorithm",
		Long: "Resolve TARGET (index, name or unique substring) and sort either the\n" +
			"algorithm's demonstration input or the --values list.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args[0], o)
		},
	}
	fs := cmd.Flags()
	fs.IntSliceVar(&o.values, "values", nil, "comma-separated integers to sort instead of the demo input")
	fs.BoolVar(&o.trace, "trace", false, "print every swap and completed pass")

	return cmd
}

func runRun(cmd *cobra.Command, target string, o runOptions) error {
	alg, err := catalog.Lookup(target)
	if err != nil {
		return err
	}
	in := alg.Demo
	if len(o.values) > 0 {
		in = o.values
	}

	w := cmd.OutOrStdout()
	var st core.Stats
	opts := []core.Option{core.WithStats(&st)}
	if o.trace {
		opts = append(opts,
			core.WithOnSwap(func(i, j int) { fmt.Fprintf(w, "  swap %d <-> %d\n", i, j) }),
			core.WithOnPass(func(p int) { fmt.Fprintf(w, "  pass %d done\n", p) }),
		)
	}

	fmt.Fprintf(w, "%s [%s]\n", alg.Title, alg.Family)
	fmt.Fprintf(w, "input:  %v\n", in)
	start := time.Now()
	out, err := alg.Sort(in, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w", alg.Name, err)
	}
	fmt.Fprintf(w, "output: %v\n", out)
	fmt.Fprintf(w, "stats:  %s\n", st)
	fmt.Fprintf(w, "time:   %v\n", elapsed)

	return nil
}
