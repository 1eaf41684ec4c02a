package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvlath/horvert/embedding"
	"github.com/lvlath/horvert/fixtures"
	"github.com/lvlath/horvert/visibility"
)

func newDrawCmd() *cobra.Command {
	var (
		fixtureName string
		n           int
		blockPath   string
		offset      int
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "build and render the horizontal visibility representation of a fixture graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildFixture(fixtureName, n)
			if err != nil {
				return err
			}

			ctx, err := visibility.Attach(g)
			if err != nil {
				return fmt.Errorf("horvert draw: %w", err)
			}
			defer ctx.Detach()

			if err := ctx.Resolve(true); err != nil {
				return fmt.Errorf("horvert draw: %w", err)
			}
			if err := ctx.Check(); err != nil {
				return fmt.Errorf("horvert draw: %w", err)
			}

			if err := ctx.RenderTo(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("horvert draw: render: %w", err)
			}

			if blockPath != "" {
				f, err := os.Create(blockPath)
				if err != nil {
					return fmt.Errorf("horvert draw: %w", err)
				}
				defer f.Close()
				if err := ctx.WriteBlock(f, offset); err != nil {
					return fmt.Errorf("horvert draw: write block: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fixtureName, "fixture", "path", `graph family to draw: "path" or "cycle"`)
	cmd.Flags().IntVar(&n, "n", 4, "vertex count")
	cmd.Flags().StringVar(&blockPath, "block", "", "also write the <DrawPlanar> coordinate block to this file")
	cmd.Flags().IntVar(&offset, "offset", 0, "vertex/edge numbering offset for the coordinate block")

	return cmd
}

func buildFixture(name string, n int) (*embedding.Container, error) {
	switch name {
	case "path":
		g, err := fixtures.Path(n)
		if err != nil {
			return nil, fmt.Errorf("horvert draw: %w", err)
		}
		return g, nil
	case "cycle":
		g, err := fixtures.Cycle(n)
		if err != nil {
			return nil, fmt.Errorf("horvert draw: %w", err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("horvert draw: unknown fixture %q (want \"path\" or \"cycle\")", name)
	}
}
