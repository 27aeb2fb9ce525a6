package sysexec

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "plain",
			cmd:  NewCommand("systemctl", "is-enabled", "--quiet", "nginx"),
			want: "systemctl is-enabled --quiet nginx",
		},
		{
			name: "with env",
			cmd: Command{
				Name: "apt-get",
				Args: []string{"install", "-y", "nginx"},
				Env:  []string{"DEBIAN_FRONTEND=noninteractive"},
			},
			want: "DEBIAN_FRONTEND=noninteractive apt-get install -y nginx",
		},
		{
			name: "quotes unsafe args",
			cmd:  NewCommand("echo", "hello world"),
			want: "echo 'hello world'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	runner := NewExecRunner()

	t.Run("success", func(t *testing.T) {
		err := runner.Run(context.Background(), NewCommand("sh", "-c", "exit 0"))
		assert.NoError(t, err)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		err := runner.Run(context.Background(), NewCommand("sh", "-c", "echo first; echo 'E: no such package'; exit 100"))
		require.Error(t, err)

		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Contains(t, err.Error(), "exit status 100")
		assert.True(t, strings.HasSuffix(err.Error(), ": E: no such package"), err.Error())
		assert.Contains(t, exitErr.Output, "first")
	})

	t.Run("env is passed", func(t *testing.T) {
		cmd := Command{
			Name: "sh",
			Args: []string{"-c", `test "$WEBINSTALL_PROBE" = yes`},
			Env:  []string{"WEBINSTALL_PROBE=yes"},
		}
		assert.NoError(t, runner.Run(context.Background(), cmd))
	})

	t.Run("missing binary", func(t *testing.T) {
		err := runner.Run(context.Background(), NewCommand("webinstall-definitely-missing"))
		assert.Error(t, err)
	})
}
