// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the value trees produced by
// cjson.Parse.
//
// A path is a sequence of elements, each of which selects a value relative to
// the previous one:
//
//	string               the member of a cjson.Object with that name
//	int                  an offset into a []any or cjson.Object; negative
//	                     offsets count backward from the end
//	func(any) (any, error)  the result of calling the function
//	nil                  the value of the member selected by the last step
//
// A step that selects an object member yields the *cjson.Member, and the next
// step continues from the value of that member.
package cursor

import (
	"fmt"

	"github.com/creachadair/cjson"
)

// Path traverses path from v and returns the resulting value as a T. If the
// path ends on an object member and T is not *cjson.Member, the value of the
// member is returned.
func Path[T any](v any, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	out := c.Value()
	if m, ok := out.(*cjson.Member); ok {
		if _, wantMember := any(zero).(*cjson.Member); !wantMember {
			out = m.Value
		}
	}
	if t, ok := out.(T); ok {
		return t, nil
	}
	return zero, fmt.Errorf("value has type %T, not %T", out, zero)
}

// A Cursor records a location in a value tree as the sequence of values
// visited on the way from its origin.
type Cursor struct {
	origin any
	trail  []any // values visited, excluding the origin
	err    error
}

// New constructs a Cursor positioned at origin.
func New(origin any) *Cursor { return &Cursor{origin: origin} }

// Origin returns the value at which c is rooted.
func (c *Cursor) Origin() any { return c.origin }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.trail) == 0 }

// Value returns the value at the current position of c.
func (c *Cursor) Value() any {
	if n := len(c.trail); n > 0 {
		return c.trail[n-1]
	}
	return c.origin
}

// Path returns the values from the origin to the current position of c,
// inclusive.
func (c *Cursor) Path() []any { return append([]any{c.origin}, c.trail...) }

// Err returns the error from the most recent call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the previous position on its path, if it is not at its
// origin, and returns c.
func (c *Cursor) Up() *Cursor {
	if n := len(c.trail); n > 0 {
		c.trail = c.trail[:n-1]
	}
	return c
}

// Reset moves c to its origin and discards its error.
func (c *Cursor) Reset() { c.trail = c.trail[:0]; c.err = nil }

// Down follows path from the current position of c, and returns c. If a step
// of the path cannot be followed, c remains at the last position reached and
// Err reports why.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		cur := c.Value()
		if m, ok := cur.(*cjson.Member); ok {
			cur = c.visit(m.Value)
		}
		next, err := step(cur, elt)
		if err != nil {
			c.err = err
			break
		} else if elt != nil {
			c.visit(next)
		}
	}
	return c
}

func (c *Cursor) visit(v any) any { c.trail = append(c.trail, v); return v }

// step returns the value selected by elt relative to cur.
func step(cur, elt any) (any, error) {
	switch t := elt.(type) {
	case nil:
		return cur, nil
	case string:
		obj, ok := cur.(cjson.Object)
		if !ok {
			return nil, fmt.Errorf("cannot select key %q from %T", t, cur)
		}
		if m := obj.Find(t); m != nil {
			return m, nil
		}
		return nil, fmt.Errorf("key %q not found", t)
	case int:
		switch v := cur.(type) {
		case []any:
			if i, ok := offset(len(v), t); ok {
				return v[i], nil
			}
			return nil, fmt.Errorf("array offset %d out of range (n=%d)", t, len(v))
		case cjson.Object:
			if i, ok := offset(len(v), t); ok {
				return v[i], nil
			}
			return nil, fmt.Errorf("object offset %d out of range (n=%d)", t, len(v))
		default:
			return nil, fmt.Errorf("cannot select offset %d from %T", t, cur)
		}
	case func(any) (any, error):
		return t(cur)
	default:
		return nil, fmt.Errorf("invalid path element %T", elt)
	}
}

// offset resolves a possibly-negative offset into a sequence of length n.
func offset(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
