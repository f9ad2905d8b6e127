package config

import (
	"time"

	"github.com/spf13/pflag"
)

// WatchConfig holds configuration for the snapshot poller.
type WatchConfig struct {
	Common
	Routers     []string
	Interval    time.Duration
	Once        bool
	Concurrency int
	Out         string
	PGDSN       string
	Migrate     bool
	StateFile   string
	StateName   string
}

// LoadWatch merges config file, environment variables, and flags into WatchConfig.
func LoadWatch(cfgFile string, flags *pflag.FlagSet) (WatchConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return WatchConfig{}, err
	}
	v.SetDefault("interval", 12*time.Second)
	v.SetDefault("concurrency", 4)
	v.SetDefault("state-name", "poller")

	common, err := loadCommon(v)
	if err != nil {
		return WatchConfig{}, err
	}

	return WatchConfig{
		Common:      common,
		Routers:     getStringSlice(v, "router"),
		Interval:    v.GetDuration("interval"),
		Once:        v.GetBool("once"),
		Concurrency: v.GetInt("concurrency"),
		Out:         v.GetString("out"),
		PGDSN:       v.GetString("pg-dsn"),
		Migrate:     v.GetBool("migrate"),
		StateFile:   v.GetString("state-file"),
		StateName:   v.GetString("state-name"),
	}, nil
}
