// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"fmt"
	"strings"
)

// Extract expands the templates of one parameter.
//
// With a value, every occurrence of placeholder in every template is
// replaced by value and templates without it are kept unchanged; at least
// one template must contain the placeholder, otherwise ErrValueNotAllowed.
// Without a value, no template may contain the placeholder, otherwise
// ErrValueRequired.
//
// Extract panics if placeholder is empty or if a template or the value
// contains a NUL byte. Both can only come from a broken configuration.
func Extract(templates []string, placeholder, value string, hasValue bool) ([]string, error) {
	if placeholder == "" {
		panic("compose: empty placeholder")
	}
	for _, tmpl := range templates {
		mustNotContainNUL("parameter template", tmpl)
	}

	extracted := make([]string, 0, len(templates))
	if !hasValue {
		for _, tmpl := range templates {
			if strings.Contains(tmpl, placeholder) {
				return nil, ErrValueRequired
			}
			extracted = append(extracted, tmpl)
		}
		return extracted, nil
	}

	mustNotContainNUL("parameter value", value)
	replaced := false
	for _, tmpl := range templates {
		if strings.Contains(tmpl, placeholder) {
			replaced = true
			tmpl = strings.ReplaceAll(tmpl, placeholder, value)
		}
		extracted = append(extracted, tmpl)
	}
	if !replaced {
		return nil, ErrValueNotAllowed
	}
	return extracted, nil
}

func mustNotContainNUL(kind, s string) {
	if strings.IndexByte(s, 0) >= 0 {
		panic(fmt.Sprintf("compose: %s contains a NUL byte: %q", kind, s))
	}
}
