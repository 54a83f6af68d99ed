package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func contextWithLogLevel(level string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", level, "")
	return cli.NewContext(nil, set, nil)
}

func TestSetupLoggerAcceptsKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO", "Debug"} {
		assert.NoError(t, setupLogger(contextWithLogLevel(level)), "level %q", level)
	}
}

func TestSetupLoggerRejectsUnknownLevel(t *testing.T) {
	err := setupLogger(contextWithLogLevel("verbose"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, set.Parse(nil))

	err := searchCommand(cli.NewContext(nil, set, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}

func TestParishCommandRequiresID(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, set.Parse(nil))

	err := parishCommand(cli.NewContext(nil, set, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parish id")
}
