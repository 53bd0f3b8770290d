// Command qseg segments grayscale images by formulating them as QUBO
// problems and decoding the lowest-energy sample.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qseg/internal/cli"
	"github.com/katalvlaran/qseg/internal/ui"
)

func main() {
	if err := cli.Run(); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: ui.Stderr(), TimeFormat: ui.TimeFormat}).With().Timestamp().Logger()
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}
