// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os"
	"strings"

	"github.com/shrun-cli/shrun/internal/config"
)

type (
	// EnvBuilder builds the environment of the launched command.
	EnvBuilder interface {
		Build(sets ...config.EnvSet) []string
	}

	// DefaultEnvBuilder applies env mutations on top of the host environment.
	// Sets are applied in argument order and, within a set, in variable-name
	// order:
	//
	//   - set assigns the value
	//   - unset removes the variable
	//   - append joins its values with the separator and appends them to the
	//     current value, separated by the separator; an unset or empty
	//     variable is simply assigned the joined values
	DefaultEnvBuilder struct {
		// Environ returns the host environment as "KEY=VALUE" strings.
		// When nil, os.Environ() is used.
		Environ func() []string
	}

	// orderedEnv keeps host variables in their original order and appends
	// new variables at the end.
	orderedEnv struct {
		order  []string
		listed map[string]bool
		values map[string]string
	}
)

// NewDefaultEnvBuilder creates a new DefaultEnvBuilder.
func NewDefaultEnvBuilder() *DefaultEnvBuilder {
	return &DefaultEnvBuilder{}
}

// Build returns the environment as "KEY=VALUE" strings for execve.
func (b *DefaultEnvBuilder) Build(sets ...config.EnvSet) []string {
	environ := b.Environ
	if environ == nil {
		environ = os.Environ
	}

	env := newOrderedEnv(environ())
	for _, set := range sets {
		for _, name := range set.Names() {
			env.apply(name, set[name])
		}
	}
	return env.list()
}

func newOrderedEnv(environ []string) *orderedEnv {
	env := &orderedEnv{
		listed: make(map[string]bool, len(environ)),
		values: make(map[string]string, len(environ)),
	}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env.set(name, value)
	}
	return env
}

func (e *orderedEnv) set(name, value string) {
	if !e.listed[name] {
		e.listed[name] = true
		e.order = append(e.order, name)
	}
	e.values[name] = value
}

func (e *orderedEnv) apply(name string, v config.EnvValue) {
	switch v.Op {
	case config.EnvOpSet:
		e.set(name, v.Value.First())
	case config.EnvOpUnset:
		delete(e.values, name)
	case config.EnvOpAppend:
		joined := strings.Join(v.Value.Values(), v.Separator)
		if current := e.values[name]; current != "" {
			joined = current + v.Separator + joined
		}
		e.set(name, joined)
	}
}

func (e *orderedEnv) list() []string {
	out := make([]string, 0, len(e.values))
	for _, name := range e.order {
		value, ok := e.values[name]
		if !ok {
			continue
		}
		out = append(out, name+"="+value)
	}
	return out
}
