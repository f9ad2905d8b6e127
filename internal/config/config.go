package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. REBALANCER_INDEXER_URL.
const EnvPrefix = "REBALANCER"

// Common holds the indexer connection settings shared by every command.
type Common struct {
	IndexerURL   string
	Headers      map[string]string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	Validate     bool
	LogLevel     string
}

// QueryConfig holds configuration for the one-shot query commands.
type QueryConfig struct {
	Common
	RouterID string
	Where    string
	OrderBy  []string
	Limit    int
	Offset   int
	All      bool
	PageSize int
}

// Load merges config file, environment variables, and flags into QueryConfig.
func Load(cfgFile string, flags *pflag.FlagSet) (QueryConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return QueryConfig{}, err
	}
	common, err := loadCommon(v)
	if err != nil {
		return QueryConfig{}, err
	}

	return QueryConfig{
		Common:   common,
		RouterID: strings.TrimSpace(v.GetString("id")),
		Where:    v.GetString("where"),
		OrderBy:  getStringSlice(v, "order-by"),
		Limit:    v.GetInt("limit"),
		Offset:   v.GetInt("offset"),
		All:      v.GetBool("all"),
		PageSize: v.GetInt("page-size"),
	}, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	return v, nil
}

func loadCommon(v *viper.Viper) (Common, error) {
	headers, err := ParseHeaders(getStringSlice(v, "header"))
	if err != nil {
		return Common{}, err
	}
	return Common{
		IndexerURL:   strings.TrimSpace(v.GetString("indexer-url")),
		Headers:      headers,
		Timeout:      v.GetDuration("timeout"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		Validate:     v.GetBool("validate"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}

// ParseHeaders turns "Key: Value" or "Key=Value" entries into a map.
func ParseHeaders(items []string) (map[string]string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(items))
	for _, item := range items {
		idx := strings.IndexAny(item, ":=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid header %q, expected key: value", item)
		}
		key := strings.TrimSpace(item[:idx])
		if key == "" {
			return nil, fmt.Errorf("invalid header %q, empty key", item)
		}
		out[key] = strings.TrimSpace(item[idx+1:])
	}
	return out, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
