package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/tender/genome"
	"honnef.co/go/tender/phenotype"
	"honnef.co/go/tender/svgdoc"
)

func newEyesCmd(a *app) *cobra.Command {
	var (
		rows, cols            int
		cellWidth, cellHeight int
		output                string
	)
	cmd := &cobra.Command{
		Use:   "eyes",
		Short: "Draw a grid of random eyes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 || cols <= 0 {
				return fmt.Errorf("grid needs positive rows and columns, got %d×%d", rows, cols)
			}
			gen := phenotype.Generator{
				Seed:     a.cfg.Seed,
				NumGenes: max(eyeGenes, a.cfg.Eye.Layout.MinGenes()),
				Workers:  a.cfg.Workers,
				Logger:   a.logger,
			}
			eyes, err := phenotype.Population(cmd.Context(), gen, rows*cols, func(g *genome.Genome) (phenotype.Eye, error) {
				return phenotype.NewEye(g, a.cfg.Eye)
			})
			if err != nil {
				return err
			}
			grid := svgdoc.Grid{Cols: cols, CellWidth: cellWidth, CellHeight: cellHeight}
			return a.writeFile(output, func(w io.Writer) error {
				return svgdoc.WriteGrid(w, eyes, grid)
			})
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 4, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 4, "grid columns")
	cmd.Flags().IntVar(&cellWidth, "cell-width", 200, "cell width")
	cmd.Flags().IntVar(&cellHeight, "cell-height", 100, "cell height")
	cmd.Flags().StringVarP(&output, "output", "o", "genetic_eye_grid.svg", "output file")
	return cmd
}

func newHeadCmd(a *app) *cobra.Command {
	var (
		points bool
		base   bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "head",
		Short: "Draw a head outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var g *genome.Genome
			if !base {
				g = genome.Random(genome.NewRand(a.cfg.Seed, 0), max(headGenes, a.cfg.Head.Layout.MinGenes()))
			}
			h, err := phenotype.NewHead(g, a.cfg.Head)
			if err != nil {
				return err
			}
			a.logger.Debug("built head", zap.Float64("width", h.Width), zap.Bool("base", base))
			return a.writeFile(output, func(w io.Writer) error {
				return svgdoc.WriteHead(w, h, points)
			})
		},
	}
	cmd.Flags().BoolVar(&points, "points", false, "mark construction landmarks")
	cmd.Flags().BoolVar(&base, "base", false, "draw the unvaried base head")
	cmd.Flags().StringVarP(&output, "output", "o", "head_base.svg", "output file")
	return cmd
}

func newFaceCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "face",
		Short: "Draw a face from a single genome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := genome.Random(genome.NewRand(a.cfg.Seed, 0), max(faceGenes, a.cfg.Face.MinGenes()))
			f, err := phenotype.NewFace(g, a.cfg.Face)
			if err != nil {
				return err
			}
			return a.writeFile(output, func(w io.Writer) error {
				return svgdoc.WriteFace(w, f)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "tender_face.svg", "output file")
	return cmd
}
