// SPDX-License-Identifier: MIT
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusroute/route"
)

// FileConfig is the YAML config file. Absent keys leave settings untouched.
type FileConfig struct {
	Data    *DataFileConfig    `yaml:"data"`
	Server  *ServerFileConfig  `yaml:"server"`
	Logging *LoggingFileConfig `yaml:"logging"`
	Routing *RoutingFileConfig `yaml:"routing"`
}

type DataFileConfig struct {
	Network   *string `yaml:"network"`
	Locations *string `yaml:"locations"`
	Cache     *string `yaml:"cache"`
}

type ServerFileConfig struct {
	Addr *string `yaml:"addr"`
}

type LoggingFileConfig struct {
	Format *string `yaml:"format"`
	Level  *string `yaml:"level"`
}

type RoutingFileConfig struct {
	Algorithm    *string  `yaml:"algorithm"`
	Padding      *float64 `yaml:"padding"`
	WalkingSpeed *float64 `yaml:"walking_speed"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	return &fc, nil
}

func applyFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if d := fc.Data; d != nil {
		if d.Network != nil {
			cfg.Network = strings.TrimSpace(*d.Network)
		}
		if d.Locations != nil {
			cfg.Locations = strings.TrimSpace(*d.Locations)
		}
		if d.Cache != nil {
			cfg.Cache = strings.TrimSpace(*d.Cache)
		}
	}
	if s := fc.Server; s != nil && s.Addr != nil {
		cfg.Addr = strings.TrimSpace(*s.Addr)
	}
	if l := fc.Logging; l != nil {
		if l.Format != nil {
			cfg.LogFormat = strings.TrimSpace(*l.Format)
		}
		if l.Level != nil {
			cfg.LogLevel = strings.TrimSpace(*l.Level)
		}
	}
	if r := fc.Routing; r != nil {
		if r.Algorithm != nil {
			cfg.Algorithm = route.Algorithm(strings.TrimSpace(*r.Algorithm))
		}
		if r.Padding != nil {
			cfg.Padding = *r.Padding
		}
		if r.WalkingSpeed != nil {
			cfg.WalkingSpeed = *r.WalkingSpeed
		}
	}
}
