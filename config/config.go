// Package config registers every setting with its default and loads overrides
// from the environment and the toml file under where.Config().
package config

import (
	"errors"
	"strings"

	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable suffixes: downloads.path -> DOWNLOADS_PATH.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds LARADL_* variables and reads the config file if there is one.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Laradl)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Laradl)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for k, field := range Default {
		viper.SetDefault(k, field.Value)
		if err := viper.BindEnv(k); err != nil {
			return err
		}
	}

	err := viper.ReadInConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return nil
	}
	return err
}
