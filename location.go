// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson

import "fmt"

// A Pos describes the line number and column offset of a location in source
// text. Both are 0-based, and the column counts characters rather than bytes.
type Pos struct {
	Line   int // line number, 0-based
	Column int // character offset of column in line, 0-based
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }
