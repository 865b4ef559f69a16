// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

// newRootCmd assembles the command tree. Errors are returned to main, which
// reports them through log.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sortlab",
		Short:         "Explore the lvsort sorting suite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newRunCmd(), newBenchCmd())

	return root
}
