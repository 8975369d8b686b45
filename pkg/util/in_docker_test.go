package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRunningInDocker(t *testing.T) {
	orig := dockerEnvFile
	t.Cleanup(func() { dockerEnvFile = orig })

	dockerEnvFile = filepath.Join(t.TempDir(), ".dockerenv")
	assert.False(t, IsRunningInDocker())

	assert.NoError(t, os.WriteFile(dockerEnvFile, nil, 0o600))
	assert.True(t, IsRunningInDocker())
}
