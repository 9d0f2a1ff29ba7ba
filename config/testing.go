package config

import (
	"time"

	"github.com/creasty/defaults"
)

const testConfig = `
LogConfig:
    LogLevel: 3
    LogPath: null
    LogToFile: false
Parsing:
    Year: 2020
    TimeZone: UTC
    StrictFields: false
GeoIP:
    DatabasePath: null
ExitNodes:
    AddressesPath: null
Output:
    Format: text
`

// LoadTestingConfig loads the hard coded testing config
func LoadTestingConfig() (*Config, error) {
	config := &Config{}

	// Initialize static config to the default values
	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	// Deserialize the yaml file contents into the static config
	if err := parseStaticConfig([]byte(testConfig), &config.S); err != nil {
		return nil, err
	}

	config.S.Version = "v0.0.0+testing"
	config.S.ExactVersion = "v0.0.0+testing"

	// Use the static config to initialize the running config
	if err := initRunningConfig(&config.S, &config.R, time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		return nil, err
	}

	return config, nil
}
