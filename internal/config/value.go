// SPDX-License-Identifier: MPL-2.0

package config

import "strings"

// StringList is a configuration value that may be authored either as a single
// string or as a list of strings. Consumers use Values, which always returns
// the normalized sequence; the authored form is kept so that encoding writes
// the value back the way it was written.
type StringList struct {
	values []string
	single bool
}

// Single returns a StringList holding one value, authored as a scalar.
func Single(s string) StringList {
	return StringList{values: []string{s}, single: true}
}

// Many returns a StringList authored as a list.
func Many(values ...string) StringList {
	return StringList{values: append([]string(nil), values...)}
}

// Values returns the normalized ordered sequence. The returned slice is
// shared with the list and must not be modified.
func (l StringList) Values() []string { return l.values }

// Len returns the number of values.
func (l StringList) Len() int { return len(l.values) }

// IsSingle reports whether the value was authored as a scalar.
func (l StringList) IsSingle() bool { return l.single }

// First returns the first value, or "" for an empty list.
func (l StringList) First() string {
	if len(l.values) == 0 {
		return ""
	}
	return l.values[0]
}

// Equal reports whether both lists hold the same values in the same form.
func (l StringList) Equal(other StringList) bool {
	if l.single != other.single || len(l.values) != len(other.values) {
		return false
	}
	for i := range l.values {
		if l.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// String returns the values joined by a single space.
func (l StringList) String() string { return strings.Join(l.values, " ") }

// tomlValue returns the value in the shape it was authored in.
func (l StringList) tomlValue() any {
	if l.single && len(l.values) == 1 {
		return l.values[0]
	}
	return append([]string{}, l.values...)
}
