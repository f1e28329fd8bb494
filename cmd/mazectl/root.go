package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mazectl",
		Short:         "mazectl generates perfect mazes and marks their escape route",
		Long:          `mazectl carves loop-free block mazes with a randomized depth-first search and solves them with a backtracking walk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd(), newTokenCmd())
	return root
}
