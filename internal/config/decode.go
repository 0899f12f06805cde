// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

var (
	stringListType = reflect.TypeFor[StringList]()
	paramDefType   = reflect.TypeFor[ParamDef]()
	envValueType   = reflect.TypeFor[EnvValue]()
)

// decodeTree decodes a schema-validated TOML tree on top of cfg. Keys absent
// from the tree keep the values already present in cfg.
func decodeTree(tree map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(stringListHook, envValueHook),
		ErrorUnused: true,
		Result:      cfg,
	})
	if err != nil {
		return fmt.Errorf("internal error: failed to create decoder: %w", err)
	}
	return decoder.Decode(tree)
}

// stringListHook decodes a scalar or a sequence of strings into a StringList
// or a ParamDef, keeping the authored form.
func stringListHook(_, to reflect.Type, data any) (any, error) {
	if to != stringListType && to != paramDefType {
		return data, nil
	}
	list, err := toStringList(data)
	if err != nil {
		return nil, err
	}
	if to == paramDefType {
		return ParamDef(list), nil
	}
	return list, nil
}

// envValueHook decodes a bare string (shorthand set) or an op-tagged table
// into an EnvValue.
func envValueHook(_, to reflect.Type, data any) (any, error) {
	if to != envValueType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return ShorthandEnv(v), nil
	case map[string]any:
		return toEnvValue(v)
	default:
		return nil, fmt.Errorf("env value: expected string or table, got %T", data)
	}
}

func toStringList(data any) (StringList, error) {
	switch v := data.(type) {
	case string:
		return Single(v), nil
	case []string:
		return Many(v...), nil
	case []any:
		values := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return StringList{}, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			values = append(values, s)
		}
		return Many(values...), nil
	default:
		return StringList{}, fmt.Errorf("expected string or list of strings, got %T", data)
	}
}

func toEnvValue(table map[string]any) (EnvValue, error) {
	rawOp, _ := table["op"].(string)
	op := EnvOp(rawOp)
	if valid, errs := op.IsValid(); !valid {
		return EnvValue{}, errs[0]
	}

	switch op {
	case EnvOpUnset:
		return UnsetEnv(), nil
	case EnvOpSet:
		value, ok := table["value"].(string)
		if !ok {
			return EnvValue{}, fmt.Errorf("env value: set requires a string value, got %T", table["value"])
		}
		return SetEnv(value), nil
	default:
		value, err := toStringList(table["value"])
		if err != nil {
			return EnvValue{}, fmt.Errorf("env value: %w", err)
		}
		separator, ok := table["separator"].(string)
		if !ok {
			separator = DefaultAppendSeparator
		}
		return EnvValue{Op: EnvOpAppend, Value: value, Separator: separator}, nil
	}
}
