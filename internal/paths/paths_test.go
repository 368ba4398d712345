package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/job-browser/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestAppDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.AppDir(), home))
	assert.True(t, strings.HasSuffix(paths.AppDir(), ".job-browser"))
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, paths.AppDir(), filepath.Dir(paths.ConfigFile()))
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
}

func TestLogFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.LogFile(), "job-browser.log"))
}

func TestEnvFile(t *testing.T) {
	assert.Equal(t, ".env", filepath.Base(paths.EnvFile()))
}
