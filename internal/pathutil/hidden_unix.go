//go:build !windows
// +build !windows

package pathutil

// MarkHidden is a no-op on Unix-like systems (Linux, macOS, BSD).
// Hidden directories there use a dot prefix (e.g., ~/.xcp),
// which is already handled by the directory name itself.
func MarkHidden(path string) error {
	return nil
}
