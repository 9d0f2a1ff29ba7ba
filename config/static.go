package config

import (
	"fmt"
	"reflect"

	yaml "gopkg.in/yaml.v2"
)

type (
	//StaticCfg is the container for other static config sections
	StaticCfg struct {
		Log          LogStaticCfg       `yaml:"LogConfig"`
		Parsing      ParsingStaticCfg   `yaml:"Parsing"`
		GeoIP        GeoIPStaticCfg     `yaml:"GeoIP"`
		ExitNodes    ExitNodeStaticCfg  `yaml:"ExitNodes"`
		Output       OutputStaticCfg    `yaml:"Output"`
		Metrics      MetricsStaticCfg   `yaml:"Metrics"`
		Filtering    FilteringStaticCfg `yaml:"Filtering"`
		Version      string             `yaml:"-"`
		ExactVersion string             `yaml:"-"`
	}

	//LogStaticCfg contains the configuration for logging
	LogStaticCfg struct {
		LogLevel   int    `yaml:"LogLevel" default:"1"`
		LogPath    string `yaml:"LogPath" default:"/var/lib/droplog/logs"`
		LogToFile  bool   `yaml:"LogToFile" default:"false"`
		MaxSizeMB  int    `yaml:"MaxSizeMB" default:"100"`
		MaxBackups int    `yaml:"MaxBackups" default:"3"`
		MaxAgeDays int    `yaml:"MaxAgeDays" default:"28"`
	}

	//ParsingStaticCfg controls how log lines are read
	ParsingStaticCfg struct {
		// Year the syslog timestamps belong to, 0 selects the current year
		Year         int    `yaml:"Year" default:"0"`
		TimeZone     string `yaml:"TimeZone" default:"Local"`
		StrictFields bool   `yaml:"StrictFields" default:"false"`
		Progress     bool   `yaml:"Progress" default:"false"`
	}

	//GeoIPStaticCfg locates the MaxMind database used for country lookups
	GeoIPStaticCfg struct {
		DatabasePath string `yaml:"DatabasePath" default:"/usr/share/GeoIP/GeoLite2-City.mmdb"`
	}

	//ExitNodeStaticCfg locates the Tor exit-addresses list
	ExitNodeStaticCfg struct {
		AddressesPath string `yaml:"AddressesPath" default:"exit-addresses"`
	}

	//OutputStaticCfg controls the report rendering
	OutputStaticCfg struct {
		Format string `yaml:"Format" default:"text"`
	}

	//FilteringStaticCfg lists source addresses and networks to leave out
	FilteringStaticCfg struct {
		AlwaysInclude []string `yaml:"AlwaysInclude"`
		NeverInclude  []string `yaml:"NeverInclude"`
	}

	//MetricsStaticCfg controls the node_exporter textfile dump
	MetricsStaticCfg struct {
		// TextfilePath is left empty to disable the dump
		TextfilePath string `yaml:"TextfilePath"`
	}
)

// parseStaticConfig deserializes YAML over the values already set in config
func parseStaticConfig(cfgFile []byte, config *StaticCfg) error {
	if err := yaml.Unmarshal(cfgFile, config); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// expand env variables, config is a pointer
	// so we have to call elem on the reflect value
	expandConfig(reflect.ValueOf(config).Elem())

	// grab the version constants set by the build process
	config.Version = Version
	config.ExactVersion = ExactVersion

	return nil
}
