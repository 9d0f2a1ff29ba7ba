package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"reflect"
	"time"

	"github.com/activecm/droplog/util"
	"github.com/creasty/defaults"
)

// Version and ExactVersion are filled at compile time with the git version of droplog
var (
	Version      = "undefined"
	ExactVersion = "undefined"
)

type (
	//Config holds the configuration for the running system
	Config struct {
		R RunningCfg
		S StaticCfg
	}
)

// userConfigPath is relative to the home directory of the current user
const userConfigPath = ".droplog/config.yaml"

// globalConfigPath is tried when no user config exists
const globalConfigPath = "/etc/droplog/config.yaml"

// GetConfig retrieves a configuration in order of precedence. An explicit
// path must exist. Otherwise the user config, then the global config, are
// used when present and the built in defaults when neither is.
func GetConfig(cfgPath string) (*Config, error) {
	if cfgPath != "" {
		return LoadConfig(cfgPath)
	}

	// Get the user's homedir
	user, err := user.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not get user info: %s\n", err.Error())
	} else if path := filepath.Join(user.HomeDir, userConfigPath); fileExists(path) {
		return LoadConfig(path)
	}

	if fileExists(globalConfigPath) {
		return LoadConfig(globalConfigPath)
	}

	return LoadDefaultConfig()
}

// LoadConfig initializes a Config from the defaults and the YAML file at cfgPath
func LoadConfig(cfgPath string) (*Config, error) {
	cfgFile, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	return loadConfig(cfgFile, time.Now())
}

// LoadDefaultConfig initializes a Config from the defaults alone
func LoadDefaultConfig() (*Config, error) {
	return loadConfig(nil, time.Now())
}

func loadConfig(cfgFile []byte, now time.Time) (*Config, error) {
	config := &Config{}

	// Initialize static config to the default values
	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	// Deserialize the yaml file contents into the static config
	if err := parseStaticConfig(cfgFile, &config.S); err != nil {
		return nil, err
	}

	// Use the static config to initialize the running config
	if err := initRunningConfig(&config.S, &config.R, now); err != nil {
		return nil, err
	}

	return config, nil
}

func fileExists(path string) bool {
	return util.Exists(path) && !util.IsDir(path)
}

// expandConfig expands environment variables in config strings
func expandConfig(reflected reflect.Value) {
	for i := 0; i < reflected.NumField(); i++ {
		f := reflected.Field(i)
		// process sub configs
		if f.Kind() == reflect.Struct {
			expandConfig(f)
		} else if f.Kind() == reflect.String {
			f.SetString(os.ExpandEnv(f.String()))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
			strs := f.Interface().([]string)
			for i, str := range strs {
				strs[i] = os.ExpandEnv(str)
			}
			f.Set(reflect.ValueOf(strs))
		}
	}
}
