package osinfo

import (
	"testing"

	"github.com/AvengeMedia/webinstall/internal/errdefs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ubuntuRelease = `PRETTY_NAME="Ubuntu 24.04.1 LTS"
NAME="Ubuntu"
VERSION_ID="24.04"
VERSION="24.04.1 LTS (Noble Numbat)"
ID=ubuntu
ID_LIKE=debian
`

const rockyRelease = `# Rocky Linux
NAME='Rocky Linux'
ID="rocky"
ID_LIKE="rhel centos fedora"
VERSION_ID="9.4"

PRETTY_NAME="Rocky Linux 9.4 (Blue Onyx)"
`

func withGoos(t *testing.T, goos string) {
	t.Helper()
	orig := getOsFunc
	getOsFunc = func() string { return goos }
	t.Cleanup(func() { getOsFunc = orig })
}

func TestGetOSInfo(t *testing.T) {
	withGoos(t, "linux")

	tests := []struct {
		name    string
		content string
		want    OSInfo
	}{
		{
			name:    "ubuntu",
			content: ubuntuRelease,
			want: OSInfo{
				ID:         "ubuntu",
				IDLike:     "debian",
				VersionID:  "24.04",
				PrettyName: "Ubuntu 24.04.1 LTS",
			},
		},
		{
			name:    "rocky with comments and blank lines",
			content: rockyRelease,
			want: OSInfo{
				ID:         "rocky",
				IDLike:     "rhel centos fedora",
				VersionID:  "9.4",
				PrettyName: "Rocky Linux 9.4 (Blue Onyx)",
			},
		},
		{
			name:    "no ID_LIKE",
			content: "ID=arch\nBUILD_ID=rolling\n",
			want:    OSInfo{ID: "arch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, DefaultPath, []byte(tt.content), 0o644))

			info, err := GetOSInfo(fs, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, *info)
		})
	}
}

func TestGetOSInfoCustomPath(t *testing.T) {
	withGoos(t, "linux")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/usr/lib/os-release", []byte("ID=debian\n"), 0o644))

	info, err := GetOSInfo(fs, "/usr/lib/os-release")
	require.NoError(t, err)
	assert.Equal(t, "debian", info.ID)
}

func TestGetOSInfoMissingFile(t *testing.T) {
	withGoos(t, "linux")

	_, err := GetOSInfo(afero.NewMemMapFs(), "")
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeDetection))
	assert.Contains(t, err.Error(), DefaultPath)
}

func TestGetOSInfoNotLinux(t *testing.T) {
	withGoos(t, "darwin")

	_, err := GetOSInfo(afero.NewMemMapFs(), "")
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeNotLinux))
	assert.Contains(t, err.Error(), "darwin")
}
