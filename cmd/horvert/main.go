// Command horvert is the single-binary multi-command CLI spec.md §6 names:
// one subcommand per test-harness letter, plus "draw" as the primary,
// fully-implemented path (a fixture generator and the visibility resolver
// needs no external planarity collaborator). Every other letter requires a
// planarity/isomorphism algorithm this module treats as an out-of-scope
// external collaborator (spec.md §1) and reports embedding.ErrExternalCollaborator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "horvert",
		Short:         "Boyer-Myrvold horizontal visibility representation builder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDrawCmd(),
		newExternalCollaboratorCmd("p", "planarity", "test whether a graph is planar"),
		newExternalCollaboratorCmd("o", "outerplanarity", "test whether a graph is outerplanar"),
		newExternalCollaboratorCmd("2", "k23", "search for a K2,3 homeomorph"),
		newExternalCollaboratorCmd("3", "k33", "search for a K3,3 homeomorph"),
		newExternalCollaboratorCmd("4", "k4", "search for a K4 homeomorph"),
		newExternalCollaboratorCmd("c", "color", "5-color a planar graph"),
		newExternalCollaboratorCmd("a", "all", "run every available algorithm"),
	)
	return root
}
