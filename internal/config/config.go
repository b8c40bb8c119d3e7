// SPDX-License-Identifier: MIT

// Package config loads CLI settings from a config file, LVROUTE_* env vars
// and bound flags, in viper's usual precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/logger"
	"github.com/katalvlaran/lvroute/matching"
)

// EnvPrefix prefixes every environment override, e.g. LVROUTE_LOG_LEVEL.
const EnvPrefix = "LVROUTE"

// ErrInvalidConfig wraps every value rejected by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Log     Log     `mapstructure:"log"`
	Input   string  `mapstructure:"input"`
	Drawing Drawing `mapstructure:"drawing"`
	Match   Match   `mapstructure:"match"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Drawing struct {
	LengthScale float64 `mapstructure:"length-scale"`
	Compact     bool    `mapstructure:"compact"`
}

type Match struct {
	Strategy matching.Strategy `mapstructure:"strategy"`
	Improve  bool              `mapstructure:"improve"`
}

// SetDefaults registers every key so env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logger.LogFormatTextValue)
	v.SetDefault("input", "")
	v.SetDefault("drawing.length-scale", core.DefaultLengthScale)
	v.SetDefault("drawing.compact", false)
	v.SetDefault("match.strategy", matching.BestFirst.String())
	v.SetDefault("match.improve", false)
}

// Load reads cfgFile (when set), applies env overrides and decodes into a
// validated Config.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading from config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	decoderCfg := func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			StringToStrategyHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, decoderCfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the library options would panic on.
func (c *Config) Validate() error {
	s := c.Drawing.LengthScale
	if !(s >= 0) || math.IsInf(s, 1) {
		return fmt.Errorf("%w: drawing.length-scale=%g", ErrInvalidConfig, s)
	}
	if c.Log.Format != logger.LogFormatJsonValue && c.Log.Format != logger.LogFormatTextValue {
		return fmt.Errorf("%w: log.format=%q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

func StringToStrategyHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != reflect.TypeOf(matching.Strategy(0)) || f.Kind() != reflect.String {
			return data, nil
		}

		return matching.ParseStrategy(data.(string))
	}
}
