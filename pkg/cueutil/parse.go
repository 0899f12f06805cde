// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize bounds configuration files read from disk.
const DefaultMaxFileSize int64 = 4 << 20

type (
	// Option configures Validate.
	Option func(*options)

	options struct {
		filename string
	}
)

// WithFilename sets the file name used in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

func defaultOptions() options {
	return options{filename: "<input>"}
}

// Validate checks a decoded Go value (maps, slices and scalars as produced by
// a format parser) against the definition at schemaPath in schema:
//
//  1. Compile the embedded schema
//  2. Encode the data as a CUE value and unify it with the definition
//  3. Validate the unified value
func Validate(schema, schemaPath string, data any, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}

	dataValue := ctx.Encode(data)
	if dataValue.Err() != nil {
		return FormatError(dataValue.Err(), o.filename)
	}

	unified := root.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return FormatError(err, o.filename)
	}
	return nil
}
