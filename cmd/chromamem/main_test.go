package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps tests away from the user's config and any collector.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return dir
}

func TestRun_HeadlessText(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	err := run([]string{"--keys", "1 3 9 2"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "1 red\n2 blue\n3 green\n", out.String())
}

func TestRun_HeadlessJSON(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	err := run([]string{"--keys", "1 3", "--json"}, &out)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"color":"red","index":0},{"color":"blue","index":1}]`, out.String())
}

func TestRun_HeadlessNothingRecognized(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	require.NoError(t, run([]string{"--keys", "x y", "--json"}, &out))
	assert.JSONEq(t, `[]`, out.String())
}

func TestRun_ConfigKeys(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "keys.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[keys]
red = "a"
green = "s"
blue = "d"
yellow = "f"
`), 0o644))
	var out bytes.Buffer

	err := run([]string{"-c", path, "--keys", "a f 1 d"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "1 red\n2 yellow\n3 blue\n", out.String())
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "dup.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[keys]
red = "1"
green = "1"
`), 0o644))

	err := run([]string{"--config", path, "--keys", "1"}, &bytes.Buffer{})

	assert.Error(t, err)
}

func TestRun_VerboseLogsToFile(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "chromamem.log")

	err := run([]string{"-v", "--log-file", logPath, "--keys", "4"}, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session: append yellow #1 len=1")
}

func TestRun_Version(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	require.NoError(t, run([]string{"--version"}, &out))
	assert.Equal(t, "chromamem dev\n", out.String())
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-c", "x.yaml", "--no-mouse", "--json"})
	require.NoError(t, err)
	assert.Equal(t, "x.yaml", opts.Config)
	assert.True(t, opts.NoMouse)
	assert.True(t, opts.JSON)

	_, err = parseArgs([]string{"--bogus"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"stray"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"--help"})
	var ferr *flags.Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, flags.ErrHelp, ferr.Type)
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	isolate(t)

	cfg, err := loadConfig(&options{NoMouse: true, Verbose: true, LogFile: "x.log"})

	require.NoError(t, err)
	assert.False(t, cfg.UI.Mouse)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, "x.log", cfg.Log.File)
}
