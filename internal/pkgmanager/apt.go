package pkgmanager

import (
	"context"
	"fmt"

	"github.com/AvengeMedia/webinstall/internal/sysexec"
)

var aptEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

type APTInstaller struct {
	runner sysexec.Runner
}

func NewAPTInstaller(runner sysexec.Runner) *APTInstaller {
	return &APTInstaller{
		runner: runner,
	}
}

func (a *APTInstaller) IsInstalled(ctx context.Context, pkg string) bool {
	return a.runner.Run(ctx, sysexec.NewCommand("dpkg", "-s", pkg)) == nil
}

func (a *APTInstaller) Refresh(ctx context.Context) error {
	cmd := sysexec.Command{Name: "apt-get", Args: []string{"update"}, Env: aptEnv}
	if err := a.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("failed to update apt cache: %w", err)
	}
	return nil
}

func (a *APTInstaller) InstallPackages(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	args := append([]string{"install", "-y"}, packages...)
	cmd := sysexec.Command{Name: "apt-get", Args: args, Env: aptEnv}
	if err := a.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("failed to install packages: %w", err)
	}
	return nil
}
