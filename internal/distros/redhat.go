package distros

import "github.com/AvengeMedia/webinstall/internal/pkgmanager"

func init() {
	// Apache ships as httpd on the Red Hat family
	Register(DistroConfig{
		ID:             FamilyRedHat,
		PackageManager: pkgmanager.PackageManagerYUM,
		Package:        "httpd",
		Service:        "httpd",
		Keywords:       []string{"rhel", "centos"},
	})
}
