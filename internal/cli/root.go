// Package cli implements the qseg command line: cobra commands whose flags
// can also be set from QSEG_* environment variables or a YAML config file.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/katalvlaran/qseg/gridgraph"
	"github.com/katalvlaran/qseg/imageio"
	"github.com/katalvlaran/qseg/internal/ui"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// EnvPrefix prefixes the environment variable of every flag.
const EnvPrefix = "QSEG"

// app holds the state shared by the commands of one root.
type app struct {
	v   *viper.Viper
	log zerolog.Logger

	loglevel   string
	configfile string
	sigma      float64
	resize     int
}

// NewRoot returns the qseg root command with all subcommands attached.
func NewRoot() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "qseg",
		Short:         "Segment grayscale images by sampling a QUBO formulation",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.loglevel, "loglevel", ui.DefaultLevel, "Console log level")
	pf.StringVar(&a.configfile, "config", "", "YAML configuration file")
	pf.Float64Var(&a.sigma, "sigma", gridgraph.DefaultSigma, "Gaussian similarity spread")
	pf.IntVar(&a.resize, "resize", 0, "Resize images to this width before building the graph (0 keeps the size)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}
	root.AddCommand(
		a.graphCmd(),
		a.quboCmd(),
		a.solveCmd(),
		a.decodeCmd(),
		versionCmd(),
	)

	return root
}

// setup loads configuration into unset flags and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.loadConfiguration(cmd.Root()); err != nil {
		return err
	}
	var (
		out     io.Writer = cmd.ErrOrStderr()
		noColor           = true
	)
	if out == os.Stderr {
		out, noColor = ui.Stderr(), false
	}
	log, err := ui.NewLogger(out, a.loglevel, noColor)
	if err != nil {
		return err
	}
	a.log = log

	return nil
}

func (a *app) loadConfiguration(root *cobra.Command) error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	// --config itself may come from the environment
	if !root.PersistentFlags().Changed("config") && a.v.IsSet("config") {
		a.configfile = a.v.GetString("config")
	}
	if a.configfile != "" {
		a.v.SetConfigFile(a.configfile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading configuration %s", a.configfile)
		}
	}

	return bindFlags(a.v, root)
}

// bindFlags applies the viper value of every flag the user did not set on
// the command line, recursively.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var errs []error
	apply := func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			if err := sv.Replace(v.GetStringSlice(f.Name)); err != nil {
				errs = append(errs, errors.Wrapf(err, "flag --%s", f.Name))
			}
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil {
			errs = append(errs, errors.Wrapf(err, "flag --%s", f.Name))
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.Flags().VisitAll(apply)
	if err := multierr.Combine(errs...); err != nil {
		return err
	}
	for _, sub := range cmd.Commands() {
		if err := bindFlags(v, sub); err != nil {
			return err
		}
	}

	return nil
}

// loadImage reads path as a normalized grayscale grid honoring --resize.
func (a *app) loadImage(path string) ([][]float64, error) {
	img, err := imageio.LoadGray(path, a.resize)
	if err != nil {
		return nil, errors.Wrap(err, "loading image")
	}
	a.log.Debug().Str("path", path).Int("height", len(img)).Int("width", len(img[0])).Msg("loaded image")

	return img, nil
}

// Run executes the root command with os.Args.
func Run() error {
	return NewRoot().Execute()
}
