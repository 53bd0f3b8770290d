package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qseg/gridgraph"
	"github.com/katalvlaran/qseg/mask"
	"github.com/katalvlaran/qseg/qubo"
)

func (a *app) graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <image>",
		Short: "Print the normalized edge list of an image's grid graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gg, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d×%d pixels, %d edges\n", gg.Height, gg.Width, gg.EdgeCount())
			renderEdges(out, gg)

			return nil
		},
	}
}

func (a *app) loadGraph(path string) (*gridgraph.GridGraph, error) {
	img, err := a.loadImage(path)
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.NewGridGraph(img, gridgraph.WithSigma(a.sigma))
	if err != nil {
		return nil, errors.Wrap(err, "building grid graph")
	}
	a.log.Debug().Int("edges", gg.EdgeCount()).Float64("sigma", a.sigma).Msg("built grid graph")

	return gg, nil
}

func (a *app) quboCmd() *cobra.Command {
	var output, formulation string
	cmd := &cobra.Command{
		Use:   "qubo <image>",
		Short: "Export the QUBO of an image as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gg, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			b, err := qubo.NewBuilder(formulation)
			if err != nil {
				return errors.Wrap(err, "--formulation")
			}
			m, err := qubo.FromGraph(gg, b)
			if err != nil {
				return errors.Wrapf(err, "formulating %s", b.Name())
			}
			a.log.Info().Str("formulation", b.Name()).Int("variables", m.NumVariables()).Int("couplings", len(m.Quadratic)).Msg("formulated model")

			if output == "" || output == "-" {
				return qubo.WriteJSON(cmd.OutOrStdout(), m)
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "creating output")
			}
			if err := qubo.WriteJSON(f, m); err != nil {
				f.Close()
				return errors.Wrapf(err, "writing %s", output)
			}

			return errors.Wrapf(f.Close(), "closing %s", output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the model to this file instead of stdout")
	cmd.Flags().StringVar(&formulation, "formulation", qubo.DefaultFormulation, "QUBO formulation: maxcut or degree")

	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	var height, width int
	cmd := &cobra.Command{
		Use:   "decode <bits>...",
		Short: "Reshape a row-major bit string into a mask",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseBits(strings.Join(args, ""))
			if err != nil {
				return err
			}
			m, err := mask.Decode(x, height, width)
			if err != nil {
				return errors.Wrap(err, "decoding mask")
			}
			renderMask(cmd.OutOrStdout(), m)

			return nil
		},
	}
	cmd.Flags().IntVar(&height, "height", 0, "Mask height")
	cmd.Flags().IntVar(&width, "width", 0, "Mask width")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

// parseBits reads 0/1 characters, skipping commas and whitespace.
func parseBits(s string) ([]int, error) {
	x := make([]int, 0, len(s))
	for i, r := range s {
		switch r {
		case '0', '1':
			x = append(x, int(r-'0'))
		case ',', ' ', '\t', '\n':
		default:
			return nil, errors.Errorf("invalid bit %q at offset %d", r, i)
		}
	}

	return x, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show qseg version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "qseg %s\n", Version)
			return nil
		},
	}
}
