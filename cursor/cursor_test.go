// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/cjson"
	"github.com/creachadair/cjson/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	v := cjson.MustParse(testJSON, nil)
	root := v.(cjson.Object)

	tests := []struct {
		name string
		path []any
		want any
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{true}, v, true},

		{"ArrayPos", []any{"list", 1},
			root.Find("list").Value.([]any)[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			root.Find("list").Value.([]any)[1],
			false,
		},
		{"ArrayRange", []any{"o", 25},
			root.Find("o").Value,
			true,
		},
		{"ObjIndex", []any{-2}, root.Find("o"), false},
		{"ObjPath", []any{"xyz", "d"},
			root.Find("xyz").Value.(cjson.Object).Find("d"),
			false,
		},
		{"ObjPathValue", []any{"xyz", "d", nil}, true, false},
		{"Nested", []any{"list", 0, "x", nil}, int64(1), false},
		{"ScalarKey", []any{"y", "hello", "there"}, "there", true},

		{"FuncArray", []any{"o", testPathFunc}, 2, false},
		{"FuncObj", []any{"xyz", testPathFunc}, 3, false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Errorf("Down %+v: got no error, want one", tc.path)
			}
			got := c.Value()
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			}
		})
	}
}

func TestCursorNavigation(t *testing.T) {
	v := cjson.MustParse(`{"a": [{"b": [10, 20]}]}`, nil)

	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at its origin")
	}
	if c.Down("a", 0, "b", -1).Err() != nil {
		t.Fatalf("Down failed: %v", c.Err())
	}
	if got := c.Value(); got != int64(20) {
		t.Errorf("Value: got %v, want 20", got)
	}
	if n := len(c.Path()); n != 7 {
		t.Errorf("Path: got %d elements, want 7", n)
	}

	// Traversal continues from the current location.
	if got := c.Up().Up().Down(nil, 0).Value(); got != int64(10) {
		t.Errorf("Value after Up: got %v, want 10", got)
	}

	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down: got no error, want one")
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("After Reset: AtOrigin=%v, Err=%v", c.AtOrigin(), c.Err())
	}
	if diff := cmp.Diff(v, c.Origin()); diff != "" {
		t.Errorf("Origin: (-want, +got)\n%s", diff)
	}
	c.Up()
	if !c.AtOrigin() {
		t.Error("Up at origin moved the cursor")
	}
}

func TestPath(t *testing.T) {
	v := cjson.MustParse(`{"name": "x", "tags": ["a", "b"], "n": 3.5}`, nil)

	if s, err := cursor.Path[string](v, "name"); err != nil || s != "x" {
		t.Errorf("Path name: got %q, %v; want x", s, err)
	}
	if s, err := cursor.Path[string](v, "tags", -1); err != nil || s != "b" {
		t.Errorf("Path tags: got %q, %v; want b", s, err)
	}
	if f, err := cursor.Path[float64](v, "n"); err != nil || f != 3.5 {
		t.Errorf("Path n: got %v, %v; want 3.5", f, err)
	}
	if m, err := cursor.Path[*cjson.Member](v, "n"); err != nil || m.Name() != "n" {
		t.Errorf("Path member: got %+v, %v; want member n", m, err)
	}
	if s, err := cursor.Path[string](v, "n"); err == nil {
		t.Errorf("Path n as string: got %q, want error", s)
	}
	if s, err := cursor.Path[string](v, "nonesuch"); err == nil {
		t.Errorf("Path nonesuch: got %q, want error", s)
	}
}

func testPathFunc(v any) (any, error) {
	switch t := v.(type) {
	case []any:
		return len(t), nil
	case cjson.Object:
		return len(t), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
