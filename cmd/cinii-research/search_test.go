package main

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cinii-research/internal/observability"
	"github.com/pdiddy/cinii-research/pkg/cinii"
)

func parseSearchFlags(t *testing.T, argv ...string) (cinii.SearchOptions, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addSearchFlags(fs)
	require.NoError(t, fs.Parse(argv))
	return optionsFromFlags(fs, fs.Args())
}

func TestOptionsFromFlagsEmpty(t *testing.T) {
	opts, err := parseSearchFlags(t)
	require.NoError(t, err)

	q, err := cinii.BuildQuery(cinii.FormatJSON, opts, "id")
	require.NoError(t, err)
	assert.Equal(t, cinii.WireQuery{"appId": "id", "format": "json"}, q)
}

func TestOptionsFromFlagsFull(t *testing.T) {
	opts, err := parseSearchFlags(t,
		"--sort", "citations",
		"--count", "100",
		"--from", "2020",
		"--until", "2023-04",
		"--pages", "10-20",
		"--exact-title=false",
		"--data-source", "kaken,JALC",
		"--language-type", "ja,en",
		"--resource-type", "journal article",
		"--lang", "en",
		"machine", "learning",
	)
	require.NoError(t, err)

	q, err := cinii.BuildQuery(cinii.FormatJSON, opts, "id")
	require.NoError(t, err)
	assert.Equal(t, cinii.WireQuery{
		"appId":          "id",
		"format":         "json",
		"q":              "machine learning",
		"sortorder":      "10",
		"count":          "100",
		"from":           "2020",
		"until":          "202304",
		"pages":          "10-20",
		"isFullTitle":    "false",
		"datasourceType": "KAKEN,JALC",
		"languageType":   "ja,en",
		"resourceType":   "journal article",
		"lang":           "en",
	}, q)
}

func TestOptionsFromFlagsQueryFlagWinsOverArgs(t *testing.T) {
	opts, err := parseSearchFlags(t, "--query", "QUIC", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "QUIC", opts.Q)
}

func TestOptionsFromFlagsZeroCountIsSent(t *testing.T) {
	opts, err := parseSearchFlags(t, "--count", "0", "--full-text")
	require.NoError(t, err)
	require.NotNil(t, opts.Count)
	assert.Equal(t, 0, *opts.Count)
	assert.Nil(t, opts.Start)
	require.NotNil(t, opts.HasLinkToFullText)
	assert.True(t, *opts.HasLinkToFullText)
}

func TestOptionsFromFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		msg  string
	}{
		{"bad sort", []string{"--sort", "popular"}, "unknown sort order"},
		{"bad lang", []string{"--lang", "fr"}, "unknown language"},
		{"bad pages", []string{"--pages", "a-b"}, "--pages"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSearchFlags(t, tt.argv...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestOptionsFromFlagsBadDate(t *testing.T) {
	_, err := parseSearchFlags(t, "--award-year", "2022-13")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cinii.ErrUnrecognizedDateType))
	assert.Contains(t, err.Error(), "--award-year")
}

func TestSearchCommandsRegistered(t *testing.T) {
	for _, st := range cinii.SearchTypes {
		cmd, _, err := rootCmd.Find([]string{string(st)})
		require.NoError(t, err)
		assert.Equal(t, string(st), cmd.Name())
		assert.NotNil(t, cmd.Flags().Lookup("csl"))
	}
	for _, name := range []string{"get", "show", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestLogDefaultsComeFromObservability(t *testing.T) {
	want := observability.DefaultLoggingConfig()
	assert.Equal(t, want.Level, viper.GetString("log.level"))
	assert.Equal(t, want.Format, viper.GetString("log.format"))
	assert.Equal(t, want.Output, viper.GetString("log.output"))
}
