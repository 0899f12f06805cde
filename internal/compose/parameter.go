// SPDX-License-Identifier: MPL-2.0

package compose

import "strings"

// Parameter is a parameter supplied on the command line, written either as
// a bare name or as name=value.
type Parameter struct {
	Name     string
	Value    string
	HasValue bool
}

// ParseParameter splits token at its first '='. A token without '=' is a
// bare parameter with no value; "name=" has an empty value.
func ParseParameter(token string) Parameter {
	name, value, found := strings.Cut(token, "=")
	return Parameter{Name: name, Value: value, HasValue: found}
}

// ParseParameters parses every token with ParseParameter, keeping their order.
func ParseParameters(tokens []string) []Parameter {
	params := make([]Parameter, len(tokens))
	for i, token := range tokens {
		params[i] = ParseParameter(token)
	}
	return params
}

// String renders the parameter the way it is written on the command line.
func (p Parameter) String() string {
	if !p.HasValue {
		return p.Name
	}
	return p.Name + "=" + p.Value
}
