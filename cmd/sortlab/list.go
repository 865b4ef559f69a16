// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsort/catalog"
)

type listOptions struct {
	family   string
	contains string
	limit    int
}

func newListCmd() *cobra.Command {
	var o listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the algorithms with their index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, o)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&o.family, "family", "", "only list one family ("+strings.Join(familyNames(), ", ")+")")
	fs.StringVar(&o.contains, "contains", "", "only list names containing this substring")
	fs.IntVar(&o.limit, "limit", 0, "list at most this many algorithms (0 = all)")

	return cmd
}

// indexed pairs an algorithm with its 1-based index in catalog.All, which
// stays valid for `run` even when the listing is filtered.
type indexed struct {
	index int
	alg   catalog.Algorithm
}

func runList(cmd *cobra.Command, o listOptions) error {
	if o.family != "" && !lo.Contains(catalog.Families(), catalog.Family(o.family)) {
		return fmt.Errorf("unknown family %q (want one of %s)", o.family, strings.Join(familyNames(), ", "))
	}

	rows := lo.Map(catalog.All(), func(a catalog.Algorithm, i int) indexed { return indexed{i + 1, a} })
	rows = lo.Filter(rows, func(r indexed, _ int) bool {
		if o.family != "" && r.alg.Family != catalog.Family(o.family) {
			return false
		}

		return strings.Contains(r.alg.Name, strings.ToLower(o.contains))
	})
	if o.limit > 0 && len(rows) > o.limit {
		rows = rows[:o.limit]
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%4s  %-16s %-13s %-6s %-8s %s\n", "#", "NAME", "FAMILY", "STABLE", "IN-PLACE", "TITLE")
	for _, r := range rows {
		fmt.Fprintf(w, "%4d  %-16s %-13s %-6s %-8s %s\n",
			r.index, r.alg.Name, r.alg.Family, yesNo(r.alg.Stable), yesNo(r.alg.InPlace), r.alg.Title)
	}

	return nil
}

func familyNames() []string {
	return lo.Map(catalog.Families(), func(f catalog.Family, _ int) string { return string(f) })
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
