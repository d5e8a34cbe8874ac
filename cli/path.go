package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/sitegen/pkg"
)

// Project configuration file names, looked up in the working directory.
const (
	projectConfigYAML   = pkg.Name + ".yaml"
	projectConfigHidden = "." + pkg.Name + ".yaml"
	projectConfigJSONC  = pkg.Name + ".jsonc"
)

// userConfigName is the base name of the per-user configuration file.
const userConfigName = "config.yaml"

// configDir returns the per-user configuration directory. It is never
// created; a missing directory simply contributes no configuration.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}

		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, pkg.Name)
}

// userConfigPath returns the per-user configuration file path, or "" if no
// configuration directory can be determined.
func userConfigPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}

	return filepath.Join(dir, userConfigName)
}

// pprofDir returns the default profile output directory.
func pprofDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, pkg.Name, "pprof")
}
