// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and the markdown guides shown for
// them in verbose mode.
//
// An ActionableError carries the failed operation, the resource involved and
// suggestions. Guides are rendered with glamour.
package issue
