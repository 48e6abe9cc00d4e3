// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson

// An Atom is a symbol-like object key. Objects parsed with a configuration
// whose key type is AtomKeys have Atom keys rather than string keys.
type Atom string

// An Object is a collection of key-value members, in order of first
// appearance in the input. Keys are unique.
type Object []*Member

// A Member is a single key-value pair belonging to an Object.
// The concrete type of Key is string or Atom.
type Member struct {
	Key   any
	Value any
}

// Name returns the name of the member key regardless of its key type.
func (m *Member) Name() string {
	switch k := m.Key.(type) {
	case string:
		return k
	case Atom:
		return string(k)
	}
	return ""
}

// Find returns the member of o whose key has the given name, or nil.
// Both string and Atom keys are matched by name.
func (o Object) Find(name string) *Member {
	for _, m := range o {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

// Get returns the value of the member of o with the given name, and reports
// whether it was found.
func (o Object) Get(name string) (any, bool) {
	if m := o.Find(name); m != nil {
		return m.Value, true
	}
	return nil, false
}

// Keys returns the names of the members of o, in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Name()
	}
	return keys
}

// set stores value under key. If a member with the same name already exists,
// its value is replaced in place and its position is retained. The index maps
// the name of each member of o to its offset, and is updated by set.
func (o *Object) set(index map[string]int, key, value any) {
	m := &Member{Key: key, Value: value}
	if i, ok := index[m.Name()]; ok {
		(*o)[i].Value = value
		return
	}
	index[m.Name()] = len(*o)
	*o = append(*o, m)
}

// unwrap converts a token, or a structure containing tokens, into plain
// values. Objects are already plain by construction.
func unwrap(v any) any {
	switch t := v.(type) {
	case Token:
		return t.Unwrap()
	case []any:
		for i, elt := range t {
			t[i] = unwrap(elt)
		}
		return t
	default:
		return v
	}
}
