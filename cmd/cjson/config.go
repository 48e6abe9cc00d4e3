// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective syntax configuration as a document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		_, cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		log.Debug().Stringer("key_type", cfg.KeyType).Msg("resolved configuration")
		fmt.Fprint(cmd.OutOrStdout(), cfg.Document())
		return nil
	},
}

func initLogLevel() {
	level := viper.GetInt("verbose")
	switch clamp(2, level) {
	case 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func initLogging() {
	var writer io.Writer

	writer = os.Stderr
	if viper.GetBool("local") {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Str("run", uuid.NewString()).
		Logger()

	viper.Set("logger", logger)
}

// logger returns the logger installed by initLogging.
func logger() zerolog.Logger {
	if log, ok := viper.Get("logger").(zerolog.Logger); ok {
		return log
	}
	return zerolog.Nop()
}

func traceConfig() {
	log := logger()

	for _, v := range viper.AllKeys() {
		if v == "logger" {
			continue
		}
		log.Trace().Msgf("%s=%v", v, viper.Get(v))
	}
}

func clamp(clamp, a int) int {
	if a >= clamp {
		return clamp
	}
	return a
}
