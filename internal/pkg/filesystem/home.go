package filesystem

import (
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory holding cligui files.
const AppDirName = ".cligui"

// UserHomeDir returns the current user's home directory, or "." when it
// cannot be determined.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// AppPath joins elem onto ~/.cligui.
func AppPath(elem ...string) string {
	return filepath.Join(append([]string{UserHomeDir(), AppDirName}, elem...)...)
}
