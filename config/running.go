package config

import (
	"fmt"
	"net"
	"time"

	_ "time/tzdata"

	"github.com/activecm/droplog/util"
	"github.com/blang/semver"
)

type (
	//RunningCfg holds configuration options that are parsed at run time
	RunningCfg struct {
		Version   semver.Version
		Parsing   ParsingRunningCfg
		Filtering FilteringRunningCfg
		LogLevel  LogLevel
	}

	//ParsingRunningCfg holds the resolved time settings of the line parser
	ParsingRunningCfg struct {
		Year     int
		Location *time.Location
	}

	//FilteringRunningCfg holds the parsed filter networks
	FilteringRunningCfg struct {
		AlwaysIncluded []*net.IPNet
		NeverIncluded  []*net.IPNet
	}
)

// initRunningConfig derives the running config from the static config.
// now supplies the year when none is configured.
func initRunningConfig(static *StaticCfg, running *RunningCfg, now time.Time) error {
	level, err := ParseLogLevel(static.Log.LogLevel)
	if err != nil {
		return err
	}
	running.LogLevel = level

	if static.Parsing.Year < 0 {
		return fmt.Errorf("invalid Parsing.Year %d", static.Parsing.Year)
	}

	loc, err := time.LoadLocation(static.Parsing.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid Parsing.TimeZone %q: %w", static.Parsing.TimeZone, err)
	}
	running.Parsing.Location = loc

	running.Parsing.Year = static.Parsing.Year
	if running.Parsing.Year == 0 {
		running.Parsing.Year = now.In(loc).Year()
	}

	running.Filtering.AlwaysIncluded, err = util.ParseSubnets(static.Filtering.AlwaysInclude)
	if err != nil {
		return fmt.Errorf("invalid Filtering.AlwaysInclude: %w", err)
	}
	running.Filtering.NeverIncluded, err = util.ParseSubnets(static.Filtering.NeverInclude)
	if err != nil {
		return fmt.Errorf("invalid Filtering.NeverInclude: %w", err)
	}

	// development builds carry no version, they are not an error
	running.Version, err = semver.ParseTolerant(static.Version)
	if err != nil {
		running.Version = semver.Version{}
	}
	return nil
}

// SetYear overrides the parsing year, e.g. from the command line
func (c *Config) SetYear(year int) error {
	if year <= 0 {
		return fmt.Errorf("invalid year %d", year)
	}
	c.S.Parsing.Year = year
	c.R.Parsing.Year = year
	return nil
}
