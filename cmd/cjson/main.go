// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program cjson parses and inspects documents written in configurable
// JSON-like syntaxes.
//
// Usage:
//
//	cjson parse [file]     # parse a document and print it as JSON
//	cjson tokens [file]    # print the tokens of a document
//	cjson config           # print the effective configuration document
//	cjson repl             # parse lines interactively
//
// The syntax is described by a configuration document named with --config
// (or the CJSON_CONFIG environment variable). Without one, the input is
// standard JSON.
package main

func main() { Execute() }
