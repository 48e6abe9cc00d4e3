// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson

import (
	"reflect"
	"sync"
)

// Options are optional settings for Parse. A nil *Options is ready for use
// and selects the default configuration.
type Options struct {
	// Config, if non-nil, is an explicit configuration mapping as described
	// by Resolve.
	Config map[string]any

	// ConfigText, if non-empty, is a configuration document as described by
	// Resolve.
	ConfigText string

	// RequireObject, if true, requires that the input be an object.
	RequireObject bool
}

func (o *Options) config() map[string]any {
	if o == nil {
		return nil
	}
	return o.Config
}

func (o *Options) configText() string {
	if o == nil {
		return ""
	}
	return o.ConfigText
}

func (o *Options) requireObject() bool { return o != nil && o.RequireObject }

// A Session parses inputs, remembering the most recently resolved
// configuration so that a sequence of parses with the same options resolves
// the configuration only once. A zero Session is ready for use, and is safe
// for concurrent use by multiple goroutines.
type Session struct {
	mu   sync.Mutex
	ovr  map[string]any // the overrides of last, or nil
	doc  string         // the document of last, or ""
	last *Config        // the most recently resolved configuration, or nil
}

// Config returns the configuration resolved from opts, reusing the previous
// configuration if opts describes the same settings.
func (s *Session) Config(opts *Options) (*Config, error) {
	ovr, doc := opts.config(), opts.configText()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != nil && s.doc == doc && reflect.DeepEqual(s.ovr, canonicalOrNil(ovr)) {
		return s.last, nil
	}
	cfg, err := Resolve(ovr, doc)
	if err != nil {
		return nil, err
	}
	s.ovr, s.doc, s.last = canonicalOrNil(ovr), doc, cfg
	return cfg, nil
}

// Parse parses text using the configuration described by opts.
func (s *Session) Parse(text string, opts *Options) (any, error) {
	cfg, err := s.Config(opts)
	if err != nil {
		return nil, err
	}
	return cfg.parse(text, opts.requireObject())
}

func canonicalOrNil(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return canonicalMap(m)
}

var defaultSession Session

// Parse parses a single value from text, using the configuration described by
// opts. If opts == nil, the default configuration is used. The configuration
// most recently resolved by Parse is cached for reuse by subsequent calls.
//
// The concrete type of the result is one of nil, bool, int64, float64,
// string, []any, or Object. In case of error, no value is returned; the
// error has concrete type *ConfigError, *LexError, or *ParseError.
func Parse(text string, opts *Options) (any, error) { return defaultSession.Parse(text, opts) }

// MustParse is as Parse, but panics if parsing fails.
func MustParse(text string, opts *Options) any {
	v, err := Parse(text, opts)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses a single value from text using the conventions of c.
// If c == nil, the default configuration is used.
func (c *Config) Parse(text string) (any, error) { return c.parse(text, false) }

func (c *Config) parse(text string, root bool) (any, error) {
	if c == nil {
		c = defaultConfig
	}
	toks, err := Lex(text, c)
	if err != nil {
		return nil, err
	}
	return parseTokens(toks, c, root)
}
