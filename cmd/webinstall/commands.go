package main

import (
	"context"
	"strings"

	"github.com/AvengeMedia/webinstall/internal/bootstrap"
	"github.com/AvengeMedia/webinstall/internal/distros"
	"github.com/AvengeMedia/webinstall/internal/errdefs"
	"github.com/AvengeMedia/webinstall/internal/log"
	"github.com/AvengeMedia/webinstall/internal/osinfo"
	"github.com/AvengeMedia/webinstall/internal/sysexec"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var runBootstrap = func(ctx context.Context, opts bootstrap.Options) error {
	b := bootstrap.NewBootstrapper(afero.NewOsFs(), sysexec.NewExecRunner(), bootstrap.NewRootChecker())
	return b.Run(ctx, opts)
}

func newRootCmd() *cobra.Command {
	var (
		distro distros.Family
		debug  bool
		opts   bootstrap.Options
	)

	cmd := &cobra.Command{
		Use:   "webinstall [flags]",
		Short: "Install and enable a web server",
		Long: "Install a web server with the native package manager and enable its systemd service.\n\n" +
			"Debian family hosts (Debian, Ubuntu and derivatives) get nginx through apt.\n" +
			"Red Hat family hosts (RHEL, CentOS and derivatives) get Apache (httpd) through yum.\n" +
			"The family is read from /etc/os-release unless --distro is given.",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(debug)
			if len(args) > 0 {
				log.Debugf("Ignoring arguments after options: %s", strings.Join(args, " "))
			}

			opts.Distro = distro
			return runBootstrap(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	// Option parsing ends at the first non-option token
	flags.SetInterspersed(false)
	flags.VarP(&distro, "distro", "d", "distribution family: debian or redhat (autodetected when omitted)")
	flags.StringVar(&opts.OSReleasePath, "os-release", osinfo.DefaultPath, "OS descriptor read during autodetection")
	flags.DurationVar(&opts.SettleDelay, "settle-delay", bootstrap.DefaultSettleDelay, "pause between package install and service enable")
	flags.BoolVar(&debug, "debug", false, "log every external command")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errdefs.Wrap(errdefs.ErrTypeUsage, "invalid option", err)
	})

	return cmd
}
