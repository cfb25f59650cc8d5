package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"  nonsense ", zerolog.InfoLevel},
	}
	for _, c := range cases {
		require.Equal(t, c.want, parseLevel(c.in), "parseLevel(%q)", c.in)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CSVLOADER_LOG_LEVEL", "DEBUG")
	t.Setenv("CSVLOADER_LOG_FORMAT", "json")

	opt := FromEnv()
	require.Equal(t, "debug", opt.Level)
	require.Equal(t, "json", opt.Format)
}

// Tests below replace the process-wide root logger and must not run in parallel.

func TestInitJSONAndNamed(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Format: "json", Writer: &buf})

	Get().Debug().Msg("hidden")
	Named("load").Info().Int("rows", 3).Msg("loaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "loaded", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.EqualValues(t, 3, entry["rows"])
	require.Equal(t, "load", entry["component"])
	require.Contains(t, entry, "time")
}

func TestInitConsoleReplacesRoot(t *testing.T) {
	var first, second bytes.Buffer
	Init(Options{Level: "info", Format: "json", Writer: &first})
	Init(Options{Level: "debug", Format: "console", NoColor: true, Writer: &second})

	Named("").Debug().Str("k", "v").Msg("console-msg")

	require.Empty(t, first.String())
	require.Contains(t, second.String(), "console-msg")
	require.Contains(t, second.String(), "k=v")
}
