package pkgmanager

import (
	"context"
	"fmt"

	"github.com/AvengeMedia/webinstall/internal/sysexec"
)

type YUMInstaller struct {
	runner sysexec.Runner
}

func NewYUMInstaller(runner sysexec.Runner) *YUMInstaller {
	return &YUMInstaller{
		runner: runner,
	}
}

func (y *YUMInstaller) IsInstalled(ctx context.Context, pkg string) bool {
	return y.runner.Run(ctx, sysexec.NewCommand("yum", "list", "installed", pkg)) == nil
}

func (y *YUMInstaller) Refresh(ctx context.Context) error {
	if err := y.runner.Run(ctx, sysexec.NewCommand("yum", "makecache", "-y")); err != nil {
		return fmt.Errorf("failed to update yum cache: %w", err)
	}
	return nil
}

func (y *YUMInstaller) InstallPackages(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	args := append([]string{"install", "-y"}, packages...)
	if err := y.runner.Run(ctx, sysexec.NewCommand("yum", args...)); err != nil {
		return fmt.Errorf("failed to install packages: %w", err)
	}
	return nil
}
