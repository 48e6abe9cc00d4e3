// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/creachadair/cjson"
	"github.com/creachadair/cjson/cursor"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a document and print its value as JSON",
	Long: `Parse a document and print its value as JSON.

The document is read from the named file, or from stdin if none is given.
Use --path to print only part of the value: each path element is an object
key, or an integer offset into an array or object (negative counts from
the end).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		name, text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		opts, err := parseOptions()
		if err != nil {
			return err
		}
		v, err := session.Parse(text, opts)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", name)
		}
		log.Debug().Str("input", name).Msg("parsed input")

		if path := viper.GetStringSlice("path"); len(path) != 0 {
			c := cursor.New(v).Down(pathElements(path)...)
			if err := c.Err(); err != nil {
				return errors.Wrapf(err, "path %q", path)
			}
			v = c.Value()
		}
		return writeJSON(cmd.OutOrStdout(), v)
	},
}

func init() {
	parseCmd.Flags().StringSliceP("path", "p", nil, "Path elements selecting the value to print")
	viper.BindPFlag("path", parseCmd.Flags().Lookup("path"))
}

// readInput reads the contents of the file named by args, or stdin.
func readInput(cmd *cobra.Command, args []string) (name, text string, _ error) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		name = "stdin"
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", "", errors.Wrap(err, "reading input")
	}
	log := logger()
	log.Debug().Str("input", name).Str("size", humanize.Bytes(uint64(len(data)))).Msg("read input")
	return name, string(data), nil
}

// pathElements converts path strings into cursor path elements. Integers
// denote offsets; all other elements denote object keys.
func pathElements(path []string) []any {
	out := make([]any, len(path))
	for i, elt := range path {
		if n, err := strconv.Atoi(elt); err == nil {
			out[i] = n
		} else {
			out[i] = elt
		}
	}
	return out
}

// writeJSON writes v to w as indented JSON. Object members are written in
// their original order.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(jsonValue(v), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding output")
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

type jsonObject cjson.Object

func (o jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Name())
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(jsonValue(m.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonValue(v any) any {
	switch t := v.(type) {
	case cjson.Object:
		return jsonObject(t)
	case *cjson.Member:
		return jsonObject{t}
	case []any:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = jsonValue(elt)
		}
		return out
	default:
		return v
	}
}
