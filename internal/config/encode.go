// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Marshal encodes cfg as TOML. Values keep the form they were authored in,
// so Parse(Marshal(cfg)) yields a Config equal to cfg.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg.tomlTree()); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Config) tomlTree() map[string]any {
	def := map[string]any{
		"passthrough_unknown_command": c.Default.PassthroughUnknownCommand,
		"placeholder":                 c.Default.Placeholder.String(),
	}
	if len(c.Default.Env) > 0 {
		def["env"] = c.Default.Env.tomlValue()
	}

	tree := map[string]any{"default": def}
	if len(c.Commands) > 0 {
		commands := make(map[string]any, len(c.Commands))
		for name, cmd := range c.Commands {
			if cmd == nil {
				continue
			}
			commands[name] = cmd.tomlTree()
		}
		tree["command"] = commands
	}
	return tree
}

func (c *CommandConfig) tomlTree() map[string]any {
	out := map[string]any{"base": c.Base.tomlValue()}
	if c.Placeholder.IsSet() {
		out["placeholder"] = c.Placeholder.String()
	}
	for key, table := range map[string]ParamTable{
		"headparams":   c.HeadParams,
		"middleparams": c.MiddleParams,
		"tailparams":   c.TailParams,
	} {
		if len(table) > 0 {
			out[key] = table.tomlValue()
		}
	}
	if len(c.Env) > 0 {
		out["env"] = c.Env.tomlValue()
	}
	return out
}

func (t ParamTable) tomlValue() map[string]any {
	out := make(map[string]any, len(t))
	for name, def := range t {
		out[name] = StringList(def).tomlValue()
	}
	return out
}
