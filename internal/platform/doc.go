// Package platform provides cross-platform filesystem helpers: atomic file
// replacement for generated outputs and permission handling that degrades to
// a no-op on Windows.
package platform
