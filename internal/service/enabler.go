package service

import (
	"context"
	"fmt"

	"github.com/AvengeMedia/webinstall/internal/errdefs"
	"github.com/AvengeMedia/webinstall/internal/log"
)

// Enabler turns on a unit unless it is already enabled.
type Enabler struct {
	systemd SystemdController
}

func NewEnabler(systemd SystemdController) *Enabler {
	return &Enabler{systemd: systemd}
}

func (e *Enabler) Enable(ctx context.Context, service string) error {
	if e.systemd.IsEnabled(ctx, service) {
		log.Infof("%s service is already enabled", service)
		return nil
	}

	if err := e.systemd.Enable(ctx, service); err != nil {
		return errdefs.Wrap(errdefs.ErrTypeServiceEnable, fmt.Sprintf("failed to enable %s service", service), err)
	}

	log.Infof("%s service enabled", service)
	return nil
}
