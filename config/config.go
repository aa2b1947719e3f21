// Package config loads per-deployment codec settings: which app info
// generation peers speak, the default framing, stream sizing, and log
// verbosity. Values come from an openbikecontrol.yaml file and
// OPENBIKE_* environment variables, environment winning.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/OpenBikeControl/openbikecontrol-protocol/wire"
)

type Config struct {
	AppInfoProfile string `mapstructure:"app_info_profile"` // "v1" or "legacy"
	Framing        string `mapstructure:"framing"`          // "framed" or "unframed"
	MaxPayload     int    `mapstructure:"max_payload"`      // stream read buffer in bytes
	LogLevel       string `mapstructure:"log_level"`        // slog level name
}

func Default() Config {
	return Config{
		AppInfoProfile: "v1",
		Framing:        "framed",
		MaxPayload:     4096,
		LogLevel:       "info",
	}
}

// Load reads openbikecontrol.yaml from path (and the working
// directory) and applies OPENBIKE_* environment overrides. A missing
// file is fine; invalid values are not.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigName("openbikecontrol")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("OPENBIKE")
	v.AutomaticEnv()

	cfg := Default()
	v.SetDefault("app_info_profile", cfg.AppInfoProfile)
	v.SetDefault("framing", cfg.Framing)
	v.SetDefault("max_payload", cfg.MaxPayload)
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	slog.Debug("Loaded configuration", "profile", cfg.AppInfoProfile, "framing", cfg.Framing, "max_payload", cfg.MaxPayload)
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.AppInfoProfile {
	case "v1", "legacy":
	default:
		return fmt.Errorf("unknown app_info_profile %q", c.AppInfoProfile)
	}
	switch c.Framing {
	case "framed", "unframed":
	default:
		return fmt.Errorf("unknown framing %q", c.Framing)
	}
	if c.MaxPayload <= 0 {
		return fmt.Errorf("max_payload must be positive, got %d", c.MaxPayload)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Profile returns the configured app info generation as a codec
// profile.
func (c Config) Profile() wire.AppInfoProfile {
	if c.AppInfoProfile == "legacy" {
		return wire.ProfileLegacy
	}
	return wire.ProfileV1
}

// Framed reports whether this deployment's transport carries the
// leading tag byte.
func (c Config) Framed() bool {
	return c.Framing != "unframed"
}

// SlogLevel returns the configured log verbosity, falling back to info
// when the value does not parse.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ---------- codec wiring ---------- //

// NewMux returns a dispatcher that decodes app info with the
// configured profile.
func (c Config) NewMux() *wire.Mux {
	mux := wire.NewMux()
	mux.SetProfile(c.Profile())
	return mux
}

// NewEncoder returns a stream encoder using the configured profile.
func (c Config) NewEncoder(w io.Writer) *wire.Encoder {
	enc := wire.NewEncoder(w)
	enc.SetProfile(c.Profile())
	return enc
}

// NewDecoder returns a stream decoder using the configured profile and
// payload cap.
func (c Config) NewDecoder(r io.Reader) *wire.Decoder {
	dec := wire.NewDecoderSize(r, c.MaxPayload)
	dec.SetProfile(c.Profile())
	return dec
}
