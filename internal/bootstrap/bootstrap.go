// Package bootstrap sequences a single web server provisioning run: resolve
// the distribution family, install its package, then enable its service.
// Every step either succeeds or ends the run; nothing is rolled back.
package bootstrap

import (
	"context"
	"time"

	"github.com/AvengeMedia/webinstall/internal/distros"
	"github.com/AvengeMedia/webinstall/internal/errdefs"
	"github.com/AvengeMedia/webinstall/internal/installer"
	"github.com/AvengeMedia/webinstall/internal/log"
	"github.com/AvengeMedia/webinstall/internal/osinfo"
	"github.com/AvengeMedia/webinstall/internal/pkgmanager"
	"github.com/AvengeMedia/webinstall/internal/service"
	"github.com/AvengeMedia/webinstall/internal/sysexec"
	"github.com/spf13/afero"
)

// DefaultSettleDelay is the pause between installing and touching the service manager.
const DefaultSettleDelay = 3 * time.Second

type Options struct {
	// Distro is the explicitly requested family; empty triggers autodetection.
	Distro distros.Family

	// OSReleasePath overrides osinfo.DefaultPath.
	OSReleasePath string

	SettleDelay time.Duration
}

type Bootstrapper struct {
	fs     afero.Fs
	runner sysexec.Runner
	root   RootChecker
	sleep  func(time.Duration)
}

func NewBootstrapper(fs afero.Fs, runner sysexec.Runner, root RootChecker) *Bootstrapper {
	return &Bootstrapper{
		fs:     fs,
		runner: runner,
		root:   root,
		sleep:  time.Sleep,
	}
}

func (b *Bootstrapper) Run(ctx context.Context, opts Options) error {
	family := opts.Distro
	if family == "" {
		log.Info("No distro specified, attempting autodetection")

		info, err := osinfo.GetOSInfo(b.fs, opts.OSReleasePath)
		if err != nil {
			return err
		}
		log.Debug("Read OS descriptor", "id", info.ID, "id_like", info.IDLike, "pretty_name", info.PrettyName)

		family, err = distros.Detect(info)
		if err != nil {
			return err
		}
		log.Infof("Detected %s distribution family", family)
	}

	config, err := distros.GetDistroConfig(family)
	if err != nil {
		return errdefs.Wrap(errdefs.ErrTypeInternal, "distro validation failed", err)
	}

	pm, err := pkgmanager.NewPackageManager(config.PackageManager, b.runner)
	if err != nil {
		return errdefs.Wrap(errdefs.ErrTypeInternal, "distro validation failed", err)
	}

	if !b.root.IsRoot() {
		log.Warn("Not running as root, package and service commands may fail")
	}

	if err := installer.NewInstaller(pm).Install(ctx, config.Package); err != nil {
		return err
	}

	if opts.SettleDelay > 0 {
		log.Debugf("Waiting %s before enabling %s", opts.SettleDelay, config.Service)
		b.sleep(opts.SettleDelay)
	}

	enabler := service.NewEnabler(service.NewSystemdController(b.runner))
	if err := enabler.Enable(ctx, config.Service); err != nil {
		return err
	}

	log.Info("Installation complete")
	return nil
}
