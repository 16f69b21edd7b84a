package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/figdoc/cmd/figdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedCommands = []string{"extract", "inspect", "query", "cache", "config", "auth"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestCLI_ParsesExtractFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"extract", "aaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbb",
		"--pages", "Home,About",
		"--page-ids", "0:1",
		"--frame-pattern", "^Card",
		"--depth", "2",
		"-f", "markdown",
		"-c", "8",
		"--no-cache",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"aaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbb"}, cli.Extract.Files)
	assert.Equal(t, "Home,About", cli.Extract.Pages)
	assert.Equal(t, "0:1", cli.Extract.PageIDs)
	assert.Equal(t, "^Card", cli.Extract.FramePattern)
	assert.Equal(t, 2, cli.Extract.Depth)
	assert.Equal(t, "markdown", cli.Extract.Format)
	assert.Equal(t, 8, cli.Extract.Concurrency)
	assert.True(t, cli.Extract.NoCache)
}
