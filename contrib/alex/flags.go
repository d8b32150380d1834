package main

import (
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/spf13/pflag"
	"golang.org/x/xerrors"
)

type FlagLogLevel struct {
	lvl log15.Lvl
}

func (f FlagLogLevel) String() string {
	return f.lvl.String()
}

func (f *FlagLogLevel) Set(v string) error {
	lvl, err := log15.LvlFromString(v)
	if err != nil {
		return err
	}

	f.lvl = lvl

	return nil
}

func (f FlagLogLevel) Type() string {
	return "log-level"
}

type FlagLogFormat struct {
	f string
}

func (f FlagLogFormat) String() string {
	return f.f
}

func (f *FlagLogFormat) Set(v string) error {
	s := strings.ToLower(v)
	switch s {
	case "json":
	case "terminal":
	default:
		return xerrors.Errorf("invalid log format: %q", v)
	}

	f.f = s

	return nil
}

func (f FlagLogFormat) Type() string {
	return "log-format"
}

type settings struct {
	logLevel  FlagLogLevel
	logFormat FlagLogFormat
	logOut    string
	config    string
	deriver   string
}

func newSettings() *settings {
	return &settings{
		logLevel:  FlagLogLevel{lvl: log15.LvlError},
		logFormat: FlagLogFormat{f: "terminal"},
	}
}

func (s *settings) addFlags(fs *pflag.FlagSet) {
	fs.Var(&s.logLevel, "log-level", "log level: {debug info warn error crit}")
	fs.Var(&s.logFormat, "log-format", "log format: {json terminal}")
	fs.StringVar(&s.logOut, "log", s.logOut, "log output file; stderr by default")
	fs.StringVar(&s.config, "config", s.config, "yaml config file")
	fs.StringVar(&s.deriver, "deriver", s.deriver, "x25519 implementation: {curve25519 circl}")
}

// merge fills the settings, which are not given by flags, from config.
func (s *settings) merge(fs *pflag.FlagSet, c Config) error {
	if len(c.Log.Level) > 0 && !fs.Changed("log-level") {
		if err := s.logLevel.Set(c.Log.Level); err != nil {
			return err
		}
	}

	if len(c.Log.Format) > 0 && !fs.Changed("log-format") {
		if err := s.logFormat.Set(c.Log.Format); err != nil {
			return err
		}
	}

	if len(c.Log.Output) > 0 && !fs.Changed("log") {
		s.logOut = c.Log.Output
	}

	if len(c.Deriver) > 0 && !fs.Changed("deriver") {
		s.deriver = c.Deriver
	}

	return nil
}

func (s *settings) Config() Config {
	return Config{
		Log: LogConfig{
			Level:  s.logLevel.String(),
			Format: s.logFormat.String(),
			Output: s.logOut,
		},
		Deriver: s.deriver,
	}
}
