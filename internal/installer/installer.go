package installer

import (
	"context"
	"fmt"

	"github.com/AvengeMedia/webinstall/internal/errdefs"
	"github.com/AvengeMedia/webinstall/internal/log"
	"github.com/AvengeMedia/webinstall/internal/pkgmanager"
)

type Installer struct {
	pkgManager pkgmanager.PackageManager
}

func NewInstaller(pkgManager pkgmanager.PackageManager) *Installer {
	return &Installer{
		pkgManager: pkgManager,
	}
}

// Install makes sure pkg is present. A package that is already installed is
// left alone. A failed index refresh only warns; a failed install is fatal.
func (i *Installer) Install(ctx context.Context, pkg string) error {
	if i.pkgManager.IsInstalled(ctx, pkg) {
		log.Infof("%s is already installed", pkg)
		return nil
	}

	log.Infof("Installing %s", pkg)
	if err := i.pkgManager.Refresh(ctx); err != nil {
		log.Warnf("Could not refresh package index, continuing anyway: %v", err)
	}

	if err := i.pkgManager.InstallPackages(ctx, []string{pkg}); err != nil {
		return errdefs.Wrap(errdefs.ErrTypeInstall, fmt.Sprintf("failed to install %s", pkg), err)
	}

	log.Infof("%s installed successfully", pkg)
	return nil
}
