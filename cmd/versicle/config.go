package main

import (
	"net"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/Versicle/core/errors"
	"github.com/FocuswithJustin/Versicle/core/locale"
)

// Config carries the file-backed settings. Flags win over file values,
// file values win over the defaults applied here.
type Config struct {
	// Language is the working language for parse, validate, expand, and
	// books when --lang is not given.
	Language string `yaml:"language"`
	// Listen is the serve address; only its port is used.
	Listen string `yaml:"listen"`
	// Database is the default SQLite export path.
	Database string `yaml:"database"`
	// LocaleXML maps language codes to Zefania XML name documents loaded
	// at startup, each registered with English delimiters as the base.
	LocaleXML map[string]string `yaml:"locale_xml"`
}

// LoadConfig reads the YAML config at path and applies defaults. An empty
// path yields the defaults alone. Locale documents named by the file are
// registered as part of loading.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, errors.Wrap(err, "parsing config")
		}
	}
	applyDefaults(&cfg)
	if err := loadLocales(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Language) == "" {
		cfg.Language = "en"
	}
	if strings.TrimSpace(cfg.Listen) == "" {
		cfg.Listen = ":8080"
	}
	if strings.TrimSpace(cfg.Database) == "" {
		cfg.Database = "versicle.db"
	}
}

func loadLocales(cfg *Config) error {
	for code, path := range cfg.LocaleXML {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "locale %s", code)
		}
		err = locale.LoadNamesXML(f, code, "en")
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "locale %s", code)
		}
	}
	return nil
}

// getConfig loads the config named by --config, or the defaults when the
// flag is unset.
func getConfig() (*Config, error) {
	return LoadConfig(CLI.Config)
}

// getLang resolves the working language: --lang wins over the config file.
func getLang(cfg *Config) string {
	if CLI.Lang != "" {
		return CLI.Lang
	}
	return cfg.Language
}

// listenPort extracts the port from a listen address like ":8080" or
// "0.0.0.0:8080", falling back to 8080.
func listenPort(listen string) int {
	_, portStr, err := net.SplitHostPort(listen)
	if err != nil {
		portStr = strings.TrimPrefix(listen, ":")
	}
	if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
		return port
	}
	return 8080
}
