package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbp-tools/bpviz/internal/config"
	"github.com/cbp-tools/bpviz/internal/testutil"
	"github.com/cbp-tools/bpviz/results/summary"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.ErrorLevel)
	}
	os.Exit(m.Run())
}

func TestWriteSummaryTable(t *testing.T) {
	// GIVEN two summary rows
	rows := []summary.Row{
		{Trace: "a", Instructions: 1234567, MPKI: 0.5},
		{Trace: "bb", Instructions: 10, MPKI: 12.25},
	}

	// WHEN written as a table
	var buf bytes.Buffer
	require.NoError(t, writeSummaryTable(&buf, rows))

	// THEN there is a header line plus one line per row with formatted numbers
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Instructions")
	assert.Contains(t, lines[0], "MPKI")
	assert.Contains(t, lines[1], "1,234,567")
	assert.Contains(t, lines[1], "0.5000")
	assert.Contains(t, lines[2], "12.2500")
}

func TestResolveServeFlags_EnvFillsUnsetFlags(t *testing.T) {
	// GIVEN an environment config and a command where only --port was given
	env = &config.Config{DataPath: "/env/data", ConfigPath: "/env/cfg.yml", Port: ":9000", CacheSize: 8}
	t.Cleanup(func() { env = nil })

	cmd := &cobra.Command{Use: "serve"}
	cmd.Flags().StringVar(&dataPath, "data", config.DefaultDataPath, "")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath, "")
	cmd.Flags().StringVar(&port, "port", config.DefaultPort, "")
	cmd.Flags().IntVar(&cacheSize, "cache-size", config.DefaultCacheSize, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "7000"}))

	// WHEN resolving
	resolveServeFlags(cmd)

	// THEN the explicit flag wins and the rest come from the environment
	assert.Equal(t, ":7000", port)
	assert.Equal(t, "/env/data", dataPath)
	assert.Equal(t, "/env/cfg.yml", configPath)
	assert.Equal(t, 8, cacheSize)
}

func TestLoadDataset_LocalPath(t *testing.T) {
	env = &config.Config{}
	t.Cleanup(func() { env = nil })

	ds, err := loadDataset(context.Background(), testutil.SampleDataPath(t))

	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}

func TestLoadDataset_BucketPathWithoutEndpoint(t *testing.T) {
	// GIVEN an s3 path but no object-store endpoint configured
	env = &config.Config{}
	t.Cleanup(func() { env = nil })

	// WHEN loading
	_, err := loadDataset(context.Background(), "s3://traces/run1")

	// THEN the client configuration error is returned
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestSummaryCommand_SortedOutput(t *testing.T) {
	// GIVEN the summary command on the sample data, sorted by instructions descending
	data := testutil.SampleDataPath(t)
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"summary", "--data", data, "--sort", "NUM_INSTRUCTIONS", "--desc", "--log", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	// WHEN executed
	require.NoError(t, rootCmd.Execute())

	// THEN the long trace is listed before the short one
	text := out.String()
	long := strings.Index(text, testutil.SparseTrace)
	short := strings.Index(text, testutil.SampleTrace)
	require.NotEqual(t, -1, long)
	require.NotEqual(t, -1, short)
	assert.Less(t, long, short)
}
