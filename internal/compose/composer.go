// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"slices"

	"github.com/shrun-cli/shrun/internal/config"
)

// Bucket tokens are placed at fixed positions of the argument vector.
const (
	// BucketHead is placed right after the executable.
	BucketHead Bucket = "head"
	// BucketMiddle is placed after the fixed base arguments.
	BucketMiddle Bucket = "middle"
	// BucketTail is placed last, after the forwarded arguments.
	BucketTail Bucket = "tail"
)

type (
	// Bucket is one of the positional groups parameter expansions go to.
	Bucket string

	// Composer accumulates parameter expansions for one command.
	Composer struct {
		command     *config.CommandConfig
		placeholder config.Placeholder
		buckets     map[Bucket][]string
	}
)

// TableName returns the config table that declares parameters of the bucket.
func (b Bucket) TableName() string { return string(b) + "params" }

// String returns the string representation of the Bucket.
func (b Bucket) String() string { return string(b) }

// NewComposer returns a Composer for command using the placeholder that
// applies to it.
func NewComposer(defaults config.DefaultConfig, command *config.CommandConfig) *Composer {
	return &Composer{
		command:     command,
		placeholder: EffectivePlaceholder(defaults, command),
		buckets:     make(map[Bucket][]string, 3),
	}
}

// Placeholder returns the placeholder used for substitution.
func (c *Composer) Placeholder() config.Placeholder { return c.placeholder }

// AddParameter expands p and appends the result to the bucket that declares
// it. Expansions in the same bucket keep the order of the AddParameter calls.
func (c *Composer) AddParameter(p Parameter) error {
	bucket, def, err := c.lookup(p.Name)
	if err != nil {
		return err
	}

	extracted, err := Extract(def.Templates(), c.placeholder.String(), p.Value, p.HasValue)
	if err != nil {
		return &ExtractionError{Param: p.Name, Err: err}
	}
	c.buckets[bucket] = append(c.buckets[bucket], extracted...)
	return nil
}

// AddParameters calls AddParameter for each parameter in order and stops at
// the first error.
func (c *Composer) AddParameters(params []Parameter) error {
	for _, p := range params {
		if err := c.AddParameter(p); err != nil {
			return err
		}
	}
	return nil
}

// Bucket returns a copy of the tokens accumulated in b.
func (c *Composer) Bucket(b Bucket) []string {
	return slices.Clone(c.buckets[b])
}

// Args assembles the argument vector from the command base, the accumulated
// buckets and the forwarded arguments.
func (c *Composer) Args(extra []string) []string {
	return Assemble(
		c.command.Base.Values(),
		c.buckets[BucketHead],
		c.buckets[BucketMiddle],
		c.buckets[BucketTail],
		extra,
	)
}

func (c *Composer) lookup(name string) (Bucket, config.ParamDef, error) {
	var (
		found   []Bucket
		matched config.ParamDef
	)
	for _, t := range c.tables() {
		if def, ok := t.table[name]; ok {
			found = append(found, t.bucket)
			matched = def
		}
	}

	switch len(found) {
	case 0:
		return "", config.ParamDef{}, &UnknownParameterError{Name: name, Declared: c.declared()}
	case 1:
		return found[0], matched, nil
	default:
		return "", config.ParamDef{}, &AmbiguousParameterPlacementError{Name: name, Buckets: found}
	}
}

type bucketTable struct {
	bucket Bucket
	table  config.ParamTable
}

func (c *Composer) tables() []bucketTable {
	return []bucketTable{
		{BucketHead, c.command.HeadParams},
		{BucketMiddle, c.command.MiddleParams},
		{BucketTail, c.command.TailParams},
	}
}

func (c *Composer) declared() []string {
	var names []string
	for _, t := range c.tables() {
		names = append(names, t.table.Names()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}
