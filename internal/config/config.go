// Package config holds knifegen settings: where to write, how many workers,
// log level and dialect overrides.
//
// Sources, lowest priority first: defaults, an optional YAML file, environment
// variables (KNIFE_OUT_DIR, KNIFE_WORKERS, KNIFE_LOG_LEVEL,
// KNIFE_WATCH_DEBOUNCE). Command line flags are applied by the caller, which
// then calls Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sghaida/knife/inject"
	"gopkg.in/yaml.v3"
)

// Config is the generator configuration.
type Config struct {
	OutDir        string        `yaml:"outDir" validate:"required"`
	Workers       int           `yaml:"workers" validate:"gte=1,lte=256"`
	LogLevel      string        `yaml:"logLevel" validate:"oneof=debug info warn error"`
	WatchDebounce time.Duration `yaml:"watchDebounce" validate:"gte=0"`
	Dialect       Dialect       `yaml:"dialect"`
}

// Dialect overrides individual literals of inject.DefaultDialect.
// Empty fields keep the default.
type Dialect struct {
	Header         string `yaml:"header"`
	BaseType       string `yaml:"baseType"`
	BaseTypeName   string `yaml:"baseTypeName"`
	FinderImport   string `yaml:"finderImport"`
	FinderType     string `yaml:"finderType"`
	LookupMethod   string `yaml:"lookupMethod"`
	LookupKind     string `yaml:"lookupKind"`
	OptionalHint   string `yaml:"optionalHint"`
	FailureType    string `yaml:"failureType"`
	ListenerSetter string `yaml:"listenerSetter"`
	ListenerType   string `yaml:"listenerType"`
	HandlerMethod  string `yaml:"handlerMethod"`
	InjectorSuffix string `yaml:"injectorSuffix"`
	SetupMethod    string `yaml:"setupMethod"`
	TeardownMethod string `yaml:"teardownMethod"`
	LocalVariable  string `yaml:"localVariable"`
}

// Resolve returns the default dialect with the overrides applied.
func (d Dialect) Resolve() inject.Dialect {
	return inject.DefaultDialect().Merge(inject.Dialect{
		Header:         d.Header,
		BaseType:       d.BaseType,
		BaseTypeName:   d.BaseTypeName,
		FinderImport:   d.FinderImport,
		FinderType:     d.FinderType,
		LookupMethod:   d.LookupMethod,
		LookupKind:     d.LookupKind,
		OptionalHint:   d.OptionalHint,
		FailureType:    d.FailureType,
		ListenerSetter: d.ListenerSetter,
		ListenerType:   d.ListenerType,
		HandlerMethod:  d.HandlerMethod,
		InjectorSuffix: d.InjectorSuffix,
		SetupMethod:    d.SetupMethod,
		TeardownMethod: d.TeardownMethod,
		LocalVariable:  d.LocalVariable,
	})
}

// Default returns the built-in configuration. OutDir is left empty.
func Default() Config {
	return Config{
		Workers:       runtime.NumCPU(),
		LogLevel:      "info",
		WatchDebounce: 300 * time.Millisecond,
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped when
// path is empty) and then the environment. It does not validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.OutDir = getenv("KNIFE_OUT_DIR", cfg.OutDir)
	cfg.LogLevel = getenv("KNIFE_LOG_LEVEL", cfg.LogLevel)

	workers, err := getenvInt("KNIFE_WORKERS", cfg.Workers)
	if err != nil {
		return err
	}
	cfg.Workers = workers

	if v := os.Getenv("KNIFE_WATCH_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("KNIFE_WATCH_DEBOUNCE: %w", err)
		}
		cfg.WatchDebounce = d
	}
	return nil
}

var validate = validator.New()

// Validate checks the final configuration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", k, err)
	}
	return n, nil
}
