// SPDX-License-Identifier: MPL-2.0

// Package platform names the operating systems with platform-specific
// behavior, such as the configuration directory location.
package platform
