package config

import "github.com/spf13/pflag"

// LagConfig holds configuration for the indexer lag check.
type LagConfig struct {
	Common
	RPCURL string
	MaxLag uint64
}

// LoadLag merges config file, environment variables, and flags into LagConfig.
func LoadLag(cfgFile string, flags *pflag.FlagSet) (LagConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return LagConfig{}, err
	}
	common, err := loadCommon(v)
	if err != nil {
		return LagConfig{}, err
	}
	return LagConfig{
		Common: common,
		RPCURL: v.GetString("rpc"),
		MaxLag: v.GetUint64("max-lag"),
	}, nil
}
