package distros

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/AvengeMedia/webinstall/internal/errdefs"
	"github.com/AvengeMedia/webinstall/internal/pkgmanager"
	"github.com/spf13/pflag"
)

// Family identifies a supported distribution family. The zero value means
// no family has been chosen yet.
type Family string

const (
	FamilyDebian Family = "debian"
	FamilyRedHat Family = "redhat"
)

var _ pflag.Value = (*Family)(nil)

func (f *Family) String() string { return string(*f) }

// Set validates v before storing it, so a bad --distro fails during flag parsing.
func (f *Family) Set(v string) error {
	if err := Validate(v); err != nil {
		return err
	}
	*f = Family(v)
	return nil
}

func (f *Family) Type() string { return "distro" }

// DistroConfig holds what a family installs and how it is recognized
type DistroConfig struct {
	ID             Family
	PackageManager pkgmanager.PackageManagerType
	Package        string
	Service        string
	// Keywords are matched case-insensitively against ID and ID_LIKE.
	Keywords []string
}

// Registry holds all supported distribution families
var Registry = make(map[Family]DistroConfig)

// Register adds a distribution family to the registry
func Register(config DistroConfig) {
	Registry[config.ID] = config
}

// SupportedFamilies returns the registered families in detection order.
func SupportedFamilies() []Family {
	return slices.Sorted(maps.Keys(Registry))
}

// Validate succeeds iff id names a registered family exactly. Matching is
// case-sensitive.
func Validate(id string) error {
	if _, ok := Registry[Family(id)]; ok {
		return nil
	}
	return errdefs.NewCustomError(errdefs.ErrTypeUsage,
		fmt.Sprintf("invalid distro %q: must be one of %s", id, strings.Join(familyNames(), ", ")))
}

// GetDistroConfig returns the config for a resolved family.
func GetDistroConfig(id Family) (DistroConfig, error) {
	config, exists := Registry[id]
	if !exists {
		return DistroConfig{}, &UnsupportedDistributionError{ID: string(id)}
	}
	return config, nil
}

// UnsupportedDistributionError is returned when a distribution is not supported
type UnsupportedDistributionError struct {
	ID string
}

func (e *UnsupportedDistributionError) Error() string {
	return "unsupported distribution: " + e.ID
}

func familyNames() []string {
	var names []string
	for _, f := range SupportedFamilies() {
		names = append(names, string(f))
	}
	return names
}
