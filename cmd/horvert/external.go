package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvlath/horvert/embedding"
)

// newExternalCollaboratorCmd builds a stub subcommand for a spec.md §6 CLI
// letter this module does not implement: planarity testing, outerplanarity
// testing, Kuratowski-subgraph search, and graph coloring are all the host
// planarity embedder's job, not this drawing module's (spec.md §1).
func newExternalCollaboratorCmd(letter, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: []string{letter},
		Short:   short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("horvert %s: %w", letter, embedding.ErrExternalCollaborator)
		},
	}
}
