// Package where resolves the directories laradl reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "LARADL_CONFIG_PATH"

// mkdir creates path if needed and returns it.
func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the config directory, $LARADL_CONFIG_PATH or the user config dir.
func Config() string {
	if path, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(path)
	}
	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.Laradl))
}

// Cache returns the cache directory, falling back to ./cache without a user cache dir.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "cache"
	}
	return mkdir(filepath.Join(base, constant.Laradl))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// History returns the file recording downloaded episodes.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Downloads returns the root of the downloaded catalog tree.
// It is not created here; the walker creates topic directories as it reaches them.
func Downloads() string {
	path := viper.GetString(key.DownloadsPath)
	if path == "" {
		path = constant.DefaultDownloadPath
	}
	return os.ExpandEnv(path)
}
