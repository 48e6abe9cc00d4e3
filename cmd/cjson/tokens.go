// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"github.com/creachadair/cjson"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a document as a table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		name, text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		_, cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		toks, err := cjson.Lex(text, cfg)
		if err != nil {
			return errors.Wrapf(err, "lexing %s", name)
		}
		log.Debug().Int("tokens", len(toks)).Msg("lexed input")

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("Pos", "Kind", "Token")
		for _, tok := range toks {
			if err := table.Append(tok.Pos.String(), tok.Kind.String(), tok.String()); err != nil {
				return errors.Wrap(err, "formatting tokens")
			}
		}
		return table.Render()
	},
}
