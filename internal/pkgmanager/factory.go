package pkgmanager

import (
	"context"
	"fmt"

	"github.com/AvengeMedia/webinstall/internal/sysexec"
)

// PackageManagerType names a native package manager
type PackageManagerType string

const (
	PackageManagerAPT PackageManagerType = "apt"
	PackageManagerYUM PackageManagerType = "yum"
)

// PackageManager wraps the three operations an install needs. Every method
// shells out and treats the exit status as the only result.
type PackageManager interface {
	IsInstalled(ctx context.Context, pkg string) bool
	Refresh(ctx context.Context) error
	InstallPackages(ctx context.Context, packages []string) error
}

func NewPackageManager(pmType PackageManagerType, runner sysexec.Runner) (PackageManager, error) {
	switch pmType {
	case PackageManagerAPT:
		return NewAPTInstaller(runner), nil
	case PackageManagerYUM:
		return NewYUMInstaller(runner), nil
	default:
		return nil, fmt.Errorf("unsupported package manager: %s", pmType)
	}
}
