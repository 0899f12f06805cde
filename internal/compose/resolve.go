// SPDX-License-Identifier: MPL-2.0

package compose

import "github.com/shrun-cli/shrun/internal/config"

// Resolution is the command definition selected for an invocation.
//
// Command either points into the loaded Config or, when Synthesized is set,
// is a passthrough definition built for this invocation only. Both are
// read-only.
type Resolution struct {
	Command     *config.CommandConfig
	Synthesized bool
}

// Resolve looks name up in cfg. An undefined name is run as a literal
// executable when passthrough is enabled: the passthrough argument decides
// when it is non-nil, the [default] table otherwise.
func Resolve(cfg *config.Config, name string, passthrough *bool) (Resolution, error) {
	if cmd := cfg.Command(name); cmd != nil {
		return Resolution{Command: cmd}, nil
	}

	if !EffectivePassthrough(cfg.Default, passthrough) {
		return Resolution{}, &CommandNotDefinedError{Name: name}
	}
	return Resolution{Command: config.EmptyFor(name), Synthesized: true}, nil
}

// EffectivePassthrough applies the per-invocation override over the default.
func EffectivePassthrough(defaults config.DefaultConfig, override *bool) bool {
	if override != nil {
		return *override
	}
	return defaults.PassthroughUnknownCommand
}

// EffectivePlaceholder returns the command placeholder when it is set and the
// default placeholder otherwise.
func EffectivePlaceholder(defaults config.DefaultConfig, cmd *config.CommandConfig) config.Placeholder {
	if cmd != nil && cmd.Placeholder.IsSet() {
		return cmd.Placeholder
	}
	return defaults.Placeholder
}
