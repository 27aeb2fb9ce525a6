package distros

import "github.com/AvengeMedia/webinstall/internal/pkgmanager"

func init() {
	Register(DistroConfig{
		ID:             FamilyDebian,
		PackageManager: pkgmanager.PackageManagerAPT,
		Package:        "nginx",
		Service:        "nginx",
		Keywords:       []string{"debian", "ubuntu"},
	})
}
