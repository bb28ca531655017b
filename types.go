package backoffice

import "fmt"

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// TokenStore persists exactly one bearer credential. It knows nothing about
// HTTP or token contents; validation is the SessionController's job.
type TokenStore interface {
	// Save overwrites any previously stored credential.
	Save(token string) error
	// Load returns the stored credential, or false when none is stored.
	Load() (string, bool)
	// Clear removes the stored credential. Clearing an empty store is not an error.
	Clear() error
}

// Navigator abstracts view navigation so the forced-logout policy and the
// SessionController's redirects stay testable. NavigateTo must be safe to call
// with the current path.
type Navigator interface {
	CurrentPath() string
	NavigateTo(path string)
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] BACKOFFICE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] BACKOFFICE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] BACKOFFICE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
