// Package osutil holds operating system constants
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

// DefaultEditor is used by edit-config when neither $VISUAL nor $EDITOR is
// set.
func DefaultEditor(goos string) string {
	if goos == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
