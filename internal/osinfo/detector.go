package osinfo

import (
	"fmt"
	"runtime"

	"github.com/AvengeMedia/webinstall/internal/errdefs"
	"github.com/spf13/afero"
)

// DefaultPath is where systemd-era distributions publish their identification.
const DefaultPath = "/etc/os-release"

type OSInfo struct {
	ID         string
	IDLike     string
	VersionID  string
	PrettyName string
}

var getOsFunc = getGoos

func getGoos() string {
	return runtime.GOOS
}

// GetOSInfo reads the OS descriptor at path from fs. An empty path means DefaultPath.
func GetOSInfo(fs afero.Fs, path string) (*OSInfo, error) {
	if goos := getOsFunc(); goos != "linux" {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeNotLinux, fmt.Sprintf("Only linux is supported, but I found %s", goos))
	}

	if path == "" {
		path = DefaultPath
	}

	info := &OSInfo{}
	if err := readOSRelease(fs, path, info); err != nil {
		return nil, errdefs.Wrap(errdefs.ErrTypeDetection, "Failed to read "+path, err)
	}

	return info, nil
}
