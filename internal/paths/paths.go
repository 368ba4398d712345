package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// AppDir returns ~/.job-browser.
func AppDir() string {
	return filepath.Join(home(), ".job-browser")
}

// ConfigFile returns ~/.job-browser/config.yaml.
func ConfigFile() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// LogFile returns ~/.job-browser/job-browser.log.
func LogFile() string {
	return filepath.Join(AppDir(), "job-browser.log")
}

// EnvFile returns ~/.job-browser/.env.
func EnvFile() string {
	return filepath.Join(AppDir(), ".env")
}
