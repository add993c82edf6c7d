// Package config handles loading, defaulting, and validation of the meshfreqd
// TOML configuration file. Every section maps to a typed struct so the rest
// of the codebase gets strong typing without manual key lookups.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/large-farva/meshfreq/internal/freqslot"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Server   ServerConfig   `toml:"server"   json:"server"`
	Logging  LoggingConfig  `toml:"logging"  json:"logging"`
	Defaults DefaultsConfig `toml:"defaults" json:"defaults"`
	Demo     DemoConfig     `toml:"demo"     json:"demo"`
	MQTT     MQTTConfig     `toml:"mqtt"     json:"mqtt"`
}

type ServerConfig struct {
	Bind string `toml:"bind" json:"bind"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

// DefaultsConfig seeds the resolve endpoint when a request omits a
// parameter. BandwidthKHz 0 means "derive from the channel name", matching
// the firmware behavior.
type DefaultsConfig struct {
	Region       string  `toml:"region"        json:"region"`
	ChannelName  string  `toml:"channel_name"  json:"channel_name"`
	BandwidthKHz float64 `toml:"bandwidth_khz" json:"bandwidth_khz"`
}

type DemoConfig struct {
	Enabled         bool `toml:"enabled"          json:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds" json:"interval_seconds"`
}

// MQTTConfig controls the optional publisher that pushes each resolution to
// a broker so other tools can consume the channel-to-frequency mapping.
type MQTTConfig struct {
	Enabled     bool   `toml:"enabled"      json:"enabled"`
	Host        string `toml:"host"         json:"host"`
	Port        int    `toml:"port"         json:"port"`
	UseTLS      bool   `toml:"use_tls"      json:"use_tls"`
	Username    string `toml:"username"     json:"username"`
	Password    string `toml:"password"     json:"-"`
	TopicPrefix string `toml:"topic_prefix" json:"topic_prefix"`
	QoS         byte   `toml:"qos"          json:"qos"`
}

// Default returns a Config populated with sane defaults. Values here are
// used whenever the TOML file omits a field.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "0.0.0.0:8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Defaults: DefaultsConfig{
			Region:       freqslot.DefaultRegion,
			ChannelName:  freqslot.DefaultChannel,
			BandwidthKHz: 0,
		},
		Demo: DemoConfig{
			Enabled:         false,
			IntervalSeconds: 30,
		},
		MQTT: MQTTConfig{
			Enabled:     false,
			Host:        "localhost",
			Port:        1883,
			TopicPrefix: "meshfreq/resolved",
			QoS:         0,
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result. An error is returned if the file can't be read,
// parsed, or if any constraint is violated.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Server.Bind == "" {
		return fmt.Errorf("server.bind must not be empty")
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}
	if _, err := freqslot.Lookup(cfg.Defaults.Region); err != nil {
		return fmt.Errorf("defaults.region: %w", err)
	}
	if cfg.Defaults.ChannelName == "" {
		return fmt.Errorf("defaults.channel_name must not be empty")
	}
	if cfg.Defaults.BandwidthKHz < 0 {
		return fmt.Errorf("defaults.bandwidth_khz must be >= 0 (0 derives from the channel name)")
	}
	if cfg.Demo.IntervalSeconds < 1 {
		return fmt.Errorf("demo.interval_seconds must be >= 1")
	}
	if cfg.MQTT.Enabled {
		if cfg.MQTT.Host == "" {
			return fmt.Errorf("mqtt.host must not be empty when mqtt is enabled")
		}
		if cfg.MQTT.Port < 1 || cfg.MQTT.Port > 65535 {
			return fmt.Errorf("mqtt.port %d out of range", cfg.MQTT.Port)
		}
		if cfg.MQTT.TopicPrefix == "" {
			return fmt.Errorf("mqtt.topic_prefix must not be empty when mqtt is enabled")
		}
		if cfg.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt.qos must be 0, 1, or 2")
		}
	}
	return nil
}
