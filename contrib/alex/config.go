package main

import (
	"encoding/json"
	"io/ioutil"
	"strings"

	"github.com/inconshreveable/log15"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/spikeekips/alexandria/keypair"
)

type Config struct {
	Log     LogConfig `yaml:"log" json:"log"`
	Deriver string    `yaml:"deriver,omitempty" json:"deriver,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
}

func loadConfig(f string) (Config, error) {
	b, err := ioutil.ReadFile(f)
	if err != nil {
		return Config{}, xerrors.Errorf("failed to read config: %w", err)
	}

	return newConfigFromBytes(b)
}

func newConfigFromBytes(b []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return Config{}, xerrors.Errorf("failed to parse config: %w", err)
	}

	if err := c.IsValid(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) String() string {
	b, _ := json.Marshal(c)
	return string(b)
}

func (c Config) IsValid() error {
	if err := c.Log.IsValid(); err != nil {
		return err
	}

	if len(c.Deriver) > 0 {
		if _, err := keypair.DefaultDerivers.Deriver(c.Deriver); err != nil {
			return xerrors.Errorf("invalid deriver in config: %w", err)
		}
	}

	return nil
}

func (lc LogConfig) IsValid() error {
	if len(lc.Level) > 0 {
		if _, err := log15.LvlFromString(lc.Level); err != nil {
			return xerrors.Errorf("invalid log level in config; level=%q", lc.Level)
		}
	}

	switch strings.ToLower(lc.Format) {
	case "", "json", "terminal":
	default:
		return xerrors.Errorf("invalid log format in config; format=%q", lc.Format)
	}

	return nil
}
