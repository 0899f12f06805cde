// SPDX-License-Identifier: MPL-2.0

package platform

// runtime.GOOS values with platform-specific handling.
const (
	// Windows stores configuration under %APPDATA% and strips ".exe" from
	// the program name.
	Windows = "windows"
	// Darwin stores configuration under ~/Library/Application Support.
	Darwin = "darwin"
)
