// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse documents interactively, one line at a time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		opts, _, err := resolveConfig()
		if err != nil {
			return err
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "\033[32mcjson>\033[0m ",
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",

			HistorySearchFold:   true,
			FuncFilterInputRune: filterInput,
		})
		if err != nil {
			return errors.Wrap(err, "starting line editor")
		}
		defer rl.Close()

		for {
			ln := rl.Line()
			if ln.CanContinue() {
				continue
			} else if ln.CanBreak() {
				break
			}
			line := strings.TrimSpace(ln.Line)
			switch strings.ToLower(line) {
			case "":
				continue
			case "exit", "quit":
				return nil
			case "help":
				fmt.Fprintln(rl.Stdout(), "Enter a document on one line to parse it, or exit to quit.")
				continue
			}

			v, err := session.Parse(line, opts)
			if err != nil {
				log.Error().Err(err).Send()
				continue
			}
			if err := writeJSON(rl.Stdout(), v); err != nil {
				log.Error().Err(err).Send()
			}
		}
		rl.Clean()
		return nil
	},
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
