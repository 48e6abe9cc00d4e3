// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/cjson"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

// setFlags sets the values of the flags that select parse options, and
// restores their defaults when t ends.
func setFlags(t *testing.T, config, keyType string, object bool) {
	t.Helper()
	viper.Set("config", config)
	viper.Set("key_type", keyType)
	viper.Set("object", object)
	t.Cleanup(func() {
		viper.Set("config", "")
		viper.Set("key_type", "")
		viper.Set("object", false)
	})
}

func TestResolveConfig(t *testing.T) {
	const doc = `{
  // Angle brackets for arrays, parentheses for objects.
  "symbols": {
    "comma": ";", "colon": "=",
    "left_bracket": "<", "right_bracket": ">",
    "left_brace": "(", "right_brace": ")",
    "quote": "single",
  },
  "boolean": {"true": "yes", "false": "no"},
}`
	docPath := filepath.Join(t.TempDir(), "syntax.json")
	if err := os.WriteFile(docPath, []byte(doc), 0600); err != nil {
		t.Fatalf("Write config: %v", err)
	}
	atomKey := map[string]any{"key_type": "symbol"}

	tests := []struct {
		name    string
		config  string
		keyType string
		object  bool

		want    *cjson.Options
		keys    cjson.KeyType
		comma   rune
		input   string
		wantVal any
	}{
		{"Default", "", "", false,
			&cjson.Options{}, cjson.StringKeys, ',',
			`{"a": [true]}`, cjson.Object{{Key: "a", Value: []any{true}}}},
		{"Object", "", "", true,
			&cjson.Options{RequireObject: true}, cjson.StringKeys, ',',
			`{"a": null}`, cjson.Object{{Key: "a", Value: nil}}},
		{"KeyType", "", "symbol", false,
			&cjson.Options{Config: atomKey, ConfigText: cjson.Default().Document()},
			cjson.AtomKeys, ',',
			`{"a": 1}`, cjson.Object{{Key: cjson.Atom("a"), Value: int64(1)}}},
		{"Document", docPath, "", false,
			&cjson.Options{ConfigText: doc}, cjson.StringKeys, ';',
			`('a' = <yes; 2>)`, cjson.Object{{Key: "a", Value: []any{true, int64(2)}}}},
		{"DocumentKeyType", docPath, "symbol", true,
			&cjson.Options{Config: atomKey, ConfigText: doc, RequireObject: true},
			cjson.AtomKeys, ';',
			`('a' = no; 'b' = ())`, cjson.Object{
				{Key: cjson.Atom("a"), Value: false},
				{Key: cjson.Atom("b"), Value: cjson.Object{}},
			}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setFlags(t, tc.config, tc.keyType, tc.object)

			opts, cfg, err := resolveConfig()
			if err != nil {
				t.Fatalf("resolveConfig failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, opts); diff != "" {
				t.Errorf("Options: (-want, +got)\n%s", diff)
			}
			if cfg.KeyType != tc.keys {
				t.Errorf("KeyType: got %v, want %v", cfg.KeyType, tc.keys)
			}
			if cfg.Symbols.Comma != tc.comma {
				t.Errorf("Comma: got %q, want %q", cfg.Symbols.Comma, tc.comma)
			}

			got, err := session.Parse(tc.input, opts)
			if err != nil {
				t.Fatalf("Parse %#q failed: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.wantVal, got); diff != "" {
				t.Errorf("Parse %#q: (-want, +got)\n%s", tc.input, diff)
			}
		})
	}

	t.Run("RequireObject", func(t *testing.T) {
		setFlags(t, "", "", true)
		opts, _, err := resolveConfig()
		if err != nil {
			t.Fatalf("resolveConfig failed: %v", err)
		}
		if v, err := session.Parse(`[1]`, opts); !errors.Is(err, cjson.ErrRoot) {
			t.Errorf("Parse: got %v, %v; want %v", v, err, cjson.ErrRoot)
		}
	})

	t.Run("BadKeyType", func(t *testing.T) {
		setFlags(t, "", "number", false)
		_, cfg, err := resolveConfig()
		var cerr *cjson.ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("resolveConfig: got %+v, %v; want *ConfigError", cfg, err)
		}
		if cerr.Key != "key_type" {
			t.Errorf("Error key: got %q, want key_type", cerr.Key)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		setFlags(t, filepath.Join(t.TempDir(), "nonesuch.json"), "", false)
		if _, cfg, err := resolveConfig(); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("resolveConfig: got %+v, %v; want %v", cfg, err, os.ErrNotExist)
		}
	})
}
