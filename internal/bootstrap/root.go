package bootstrap

import "golang.org/x/sys/unix"

// RootChecker abstracts privilege checking for testability.
type RootChecker interface {
	// IsRoot returns true if the current process has root privileges.
	IsRoot() bool
}

type euidRootChecker struct{}

// NewRootChecker returns a RootChecker that checks the effective UID.
func NewRootChecker() RootChecker {
	return euidRootChecker{}
}

func (euidRootChecker) IsRoot() bool {
	return unix.Geteuid() == 0
}
