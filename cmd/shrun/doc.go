// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the shrun command line.
//
// shrun [flags] COMMAND [PARAM...] [-- EXTRA...]
//
// COMMAND selects a [command.<name>] table of the configuration. Each PARAM
// is "name" or "name=value" and is expanded from the headparams, middleparams
// or tailparams table that declares it. Arguments after "--" are forwarded
// as is. Flags must precede COMMAND; everything after it belongs to the
// launched command.
package cmd
