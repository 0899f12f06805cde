// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates decoded configuration trees against embedded CUE
// schemas and formats CUE errors for humans.
//
// Configuration files are parsed by their own format library (TOML for shrun)
// into a generic tree; the tree is then encoded as a CUE value, unified with a
// schema definition and validated:
//
//	//go:embed config_schema.cue
//	var schema string
//
//	if err := cueutil.Validate(schema, "#Config", tree, cueutil.WithFilename(path)); err != nil {
//	    return err // includes a JSON-path style field path
//	}
package cueutil
