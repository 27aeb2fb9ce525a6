package distros

import (
	"fmt"
	"strings"

	"github.com/AvengeMedia/webinstall/internal/errdefs"
	"github.com/AvengeMedia/webinstall/internal/osinfo"
)

// Detect maps the ID and ID_LIKE fields of info to a supported family.
// Families are tried in SupportedFamilies order and the first keyword hit wins.
func Detect(info *osinfo.OSInfo) (Family, error) {
	fields := []string{strings.ToLower(info.ID), strings.ToLower(info.IDLike)}

	for _, family := range SupportedFamilies() {
		for _, keyword := range Registry[family].Keywords {
			for _, field := range fields {
				if strings.Contains(field, keyword) {
					return family, nil
				}
			}
		}
	}

	return "", errdefs.NewCustomError(errdefs.ErrTypeDetection,
		fmt.Sprintf("autodetection failed: unrecognized distribution (ID=%q, ID_LIKE=%q)", info.ID, info.IDLike))
}
