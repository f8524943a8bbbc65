// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cinii-research CLI, a command-line
// front end to the CiNii Research OpenSearch API.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cinii-research/internal/httputil"
	"github.com/pdiddy/cinii-research/internal/observability"
	"github.com/pdiddy/cinii-research/internal/secrets"
	"github.com/pdiddy/cinii-research/pkg/cinii"
	"github.com/pdiddy/cinii-research/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "cinii-research/0.1"
)

var (
	// loadedSecrets holds credentials loaded from .secrets/ at startup.
	loadedSecrets map[string]string

	logger   = zerolog.Nop()
	registry = prometheus.NewRegistry()
	metrics  = observability.NewMetrics(registry)
)

// rootCmd is the base command for the cinii-research CLI.
var rootCmd = &cobra.Command{
	Use:   "cinii-research",
	Short: "Search CiNii Research from the command line",
	Long: `cinii-research queries the CiNii Research OpenSearch API. Each search type
(all, data, articles, books, dissertations, projects) is a subcommand sharing
the same filter flags. Results print as a table, JSON or a CSL-YAML
bibliography, and can be saved to a YAML file for later display.

The application id is taken from --app-id, CINII_APP_ID, the app_id config
key, or .secrets/cinii-app-id, in that order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var logCfg types.LoggingConfig
		if err := viper.UnmarshalKey("log", &logCfg); err != nil {
			return fmt.Errorf("reading log config: %w", err)
		}
		logger = observability.NewLogger(logCfg)

		if f := viper.ConfigFileUsed(); f != "" {
			logger.Info().Str("file", f).Msg("using config file")
		}

		s, err := secrets.Load(".secrets/", logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug().Int("count", len(s)).Msg("loaded secrets")
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("metrics_file")
		if path == "" {
			return nil
		}
		if err := prometheus.WriteToTextfile(path, registry); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./cinii-research.yaml or ~/.config/cinii-research/config.yaml)")
	pf.String("app-id", "", "CiNii application id (overrides CINII_APP_ID)")
	pf.String("base-url", "", "OpenSearch endpoint (default "+cinii.DefaultBaseURL+")")
	pf.Duration("timeout", 0, "HTTP request timeout (default 60s)")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error (default warn)")
	pf.String("log-format", "", "log format: json or console (default json)")
	pf.String("metrics-file", "", "write Prometheus metrics in text format to this file after the run")

	bindFlag("app_id", "app-id")
	bindFlag("base_url", "base-url")
	bindFlag("timeout", "timeout")
	bindFlag("log.level", "log-level")
	bindFlag("log.format", "log-format")
	bindFlag("metrics_file", "metrics-file")

	viper.SetDefault("base_url", cinii.DefaultBaseURL)
	viper.SetDefault("timeout", defaultTimeout)
	viper.SetDefault("user_agent", defaultUserAgent)
	viper.SetDefault("app_id", "")
	viper.SetDefault("metrics_file", "")
	logDefaults := observability.DefaultLoggingConfig()
	viper.SetDefault("log.level", logDefaults.Level)
	viper.SetDefault("log.format", logDefaults.Format)
	viper.SetDefault("log.output", logDefaults.Output)
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cinii-research")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cinii-research"))
		}
	}

	viper.SetEnvPrefix("CINII")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// clientConfig assembles the client configuration from viper and secrets.
func clientConfig() (types.CiNiiConfig, error) {
	var cfg types.CiNiiConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	cfg.AppID = secrets.ResolveAppID(loadedSecrets, cfg.AppID)
	return cfg, nil
}

// newClient builds a client with the instrumented transport.
func newClient() (*cinii.Client, error) {
	cfg, err := clientConfig()
	if err != nil {
		return nil, err
	}
	if cfg.AppID == "" {
		logger.Warn().Msg("no application id configured; the server will reject requests")
	}
	hc := httputil.NewClient(cfg.Timeout, logger, metrics)
	return cinii.New(cfg, cinii.WithHTTPClient(hc), cinii.WithLogger(logger)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
