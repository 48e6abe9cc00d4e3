// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/creachadair/cjson"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "cjson",
		Short: "Parse documents written in a configurable JSON-like syntax",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			traceConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	// session caches the configuration resolved for the current options.
	session cjson.Session
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a syntax configuration document (default standard JSON)")
	rootCmd.PersistentFlags().String("key-type", "", "Override the key type of the syntax [string, symbol]")
	rootCmd.PersistentFlags().Bool("object", false, "Require the input to be an object")

	// Bind viper config to the root flags
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("key_type", rootCmd.PersistentFlags().Lookup("key-type"))
	viper.BindPFlag("object", rootCmd.PersistentFlags().Lookup("object"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("cjson version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.SetEnvPrefix("CJSON")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Register commands on the root binary command
	rootCmd.AddCommand(parseCmd, tokensCmd, configCmd, replCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// parseOptions constructs parse options from the flags and environment.
func parseOptions() (*cjson.Options, error) {
	opts := &cjson.Options{RequireObject: viper.GetBool("object")}
	if path := viper.GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading configuration")
		}
		opts.ConfigText = string(data)
	}
	if kt := viper.GetString("key_type"); kt != "" {
		opts.Config = map[string]any{"key_type": kt}
		if opts.ConfigText == "" {
			opts.ConfigText = cjson.Default().Document()
		}
	}
	return opts, nil
}

// resolveConfig returns the configuration selected by the flags.
func resolveConfig() (*cjson.Options, *cjson.Config, error) {
	opts, err := parseOptions()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := session.Config(opts)
	if err != nil {
		return nil, nil, errors.Wrap(err, "resolving configuration")
	}
	return opts, cfg, nil
}
