package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings needed to open a store and wire logging.
type Config interface {
	BasePath() string
	LogLevel() string
	LogFile() string
}

// LoadConfig reads .sip.yaml from $SIP_CONFIG_PATH or the working directory,
// layered under SIP_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.sip.db")
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-file", "")
	v.SetConfigName(".sip") // .yaml is implicit
	v.SetEnvPrefix("SIP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("SIP_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:  path,
		Level: v.GetString("log-level"),
		File:  v.GetString("log-file"),
		Used:  v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Level string `json:"logLevel"`
	File  string `json:"logFile"`
	Used  string `json:"configFile"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) LogFile() string {
	return f.File
}

// ConfigFile reports which config file was read, empty when none was found.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.Used
	}
	return ""
}
