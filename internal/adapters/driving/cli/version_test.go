package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	out, err := runCommand(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "bikeshare version test-version-1.0.0")
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	originalVersion := version
	version = "dev"
	defer func() { version = originalVersion }()

	out, err := runCommand(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "bikeshare version dev")
}

func TestVersionCmd_NeedsNoServices(t *testing.T) {
	saveGlobals(t)
	SetServices(nil, nil)
	serviceFactory = nil

	_, err := runCommand(t, "", "version")

	assert.NoError(t, err)
}
