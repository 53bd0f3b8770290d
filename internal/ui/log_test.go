package ui_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qseg/internal/ui"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"trace", zerolog.TraceLevel},
	}
	for _, tc := range cases {
		got, err := ui.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := ui.ParseLevel("chatty")
	require.ErrorContains(t, err, `unknown log level "chatty"`)
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := ui.NewLogger(&buf, "info", true)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("edges", 4).Msg("built grid graph")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "built grid graph")
	require.Contains(t, out, "edges=4")
	require.NotContains(t, out, "\x1b[")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := ui.NewLogger(&bytes.Buffer{}, "loud", true)
	require.Error(t, err)
}
