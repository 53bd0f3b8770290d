package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qseg/anneal"
	"github.com/katalvlaran/qseg/imageio"
	"github.com/katalvlaran/qseg/segment"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		samples, maskfile string
		rows              int
	)
	cfg := segment.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "solve <image>",
		Short: "Segment an image with a recorded sample set",
		Long: "Formulates the image as a QUBO, samples it through a replay of a\n" +
			"previously recorded sample set and decodes the lowest-energy sample.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := a.loadImage(args[0])
			if err != nil {
				return err
			}
			cfg.Sigma = a.sigma
			cfg.Anneal.Logger = a.log

			res, err := segment.Segment(cmd.Context(), img, anneal.ReplayConnector{Path: samples}, cfg)
			if err != nil {
				return errors.Wrap(err, "segmenting")
			}
			a.log.Info().
				Float64("energy", res.Best.Energy).
				Int("cut_edges", len(res.Cut)).
				Int("regions", len(res.Regions)).
				Msg("segmented image")

			out := cmd.OutOrStdout()
			renderDiagnostics(out, res.Diagnostics)
			renderSamples(out, res.Table, rows)
			fmt.Fprintf(out, "lowest energy %g (seen %d times), %d cut edges, %d regions\n",
				res.Best.Energy, res.Best.NumOccurrences, len(res.Cut), len(res.Regions))
			renderMask(out, res.Mask)

			if maskfile == "" {
				return nil
			}
			if err := imageio.SaveMask(maskfile, res.Mask); err != nil {
				return errors.Wrap(err, "saving mask")
			}
			a.log.Info().Str("path", maskfile).Msg("wrote mask")

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&samples, "samples", "", "Recorded sample set (JSON)")
	f.StringVar(&maskfile, "mask", "", "Write the decoded mask to this image file")
	f.IntVar(&rows, "rows", 10, "Sample table rows to print (0 prints all)")
	f.StringVar(&cfg.Formulation, "formulation", cfg.Formulation, "QUBO formulation: maxcut or degree")
	f.IntVar(&cfg.Anneal.Reads, "reads", cfg.Anneal.Reads, "Number of samples to request")
	f.StringVar(&cfg.Anneal.Token, "token", "", "Sampler API token")
	f.StringVar(&cfg.Anneal.Topology, "topology", cfg.Anneal.Topology, "Sampler hardware topology")
	f.DurationVar(&cfg.Anneal.Timeout, "timeout", 0, "Bound on the sampler round-trip (0 disables)")
	f.IntVar(&cfg.Anneal.Retries, "retries", cfg.Anneal.Retries, "Extra attempts for transient sampler failures")
	_ = cmd.MarkFlagRequired("samples")

	return cmd
}
