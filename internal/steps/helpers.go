package steps

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/maxkapur/topgrade/internal/domain/step"
)

// asExitCode reports whether err is an ExitError with the given code,
// storing it in target when it is.
func asExitCode(err error, target **step.ExitError, code int) bool {
	if errors.As(err, target) && (*target).Code == code {
		return true
	}
	return false
}

// homePath joins path elements onto the user's home directory. Returns
// false when the home directory cannot be resolved or the path is absent.
func homePath(elem ...string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(append([]string{home}, elem...)...)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
