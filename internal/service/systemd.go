// Package service enables web server units through systemctl.
package service

import (
	"context"
	"fmt"

	"github.com/AvengeMedia/webinstall/internal/sysexec"
)

// SystemdController abstracts the systemctl calls the enabler needs.
type SystemdController interface {
	// IsEnabled returns true if the named unit is enabled to start on boot.
	IsEnabled(ctx context.Context, service string) bool

	// Enable enables the named unit to start on boot.
	Enable(ctx context.Context, service string) error
}

type systemctlController struct {
	runner sysexec.Runner
}

// NewSystemdController returns a SystemdController that calls systemctl through runner.
func NewSystemdController(runner sysexec.Runner) SystemdController {
	return &systemctlController{runner: runner}
}

func (c *systemctlController) IsEnabled(ctx context.Context, service string) bool {
	return c.runner.Run(ctx, sysexec.NewCommand("systemctl", "is-enabled", "--quiet", service)) == nil
}

func (c *systemctlController) Enable(ctx context.Context, service string) error {
	if err := c.runner.Run(ctx, sysexec.NewCommand("systemctl", "enable", service)); err != nil {
		return fmt.Errorf("systemctl enable %s: %w", service, err)
	}
	return nil
}
