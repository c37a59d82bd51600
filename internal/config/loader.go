package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for structure-me configuration.
const envPrefix = "STRUCTURE_ME"

// Configuration keys.
const (
	keyTemplateDir   = "template_dir"
	keyDebug         = "debug"
	keyLogTimestamps = "log.timestamps"
)

// Loader reads configuration from the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv(keyTemplateDir, EnvTemplateDir)
	_ = v.BindEnv(keyDebug, EnvDebug)
	_ = v.BindEnv(keyLogTimestamps, EnvLogTimestamps)

	return &Loader{v: v}
}

// Environment variable names.
const (
	EnvTemplateDir   = envPrefix + "_TEMPLATE_DIR"
	EnvDebug         = envPrefix + "_DEBUG"
	EnvLogTimestamps = envPrefix + "_LOG_TIMESTAMPS"
)

// Load reads the configuration. Unset variables keep their defaults; a
// boolean variable that does not parse is an error.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	dir, err := ExpandPath(l.v.GetString(keyTemplateDir))
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", EnvTemplateDir, err)
	}
	cfg.TemplateDir = dir

	if debug, ok, err := l.boolValue(keyDebug, EnvDebug); err != nil {
		return nil, err
	} else if ok {
		cfg.Log.Debug = debug
	}

	if ts, ok, err := l.boolValue(keyLogTimestamps, EnvLogTimestamps); err != nil {
		return nil, err
	} else if ok {
		cfg.Log.Timestamps = &ts
	}

	return cfg, nil
}

// boolValue parses a boolean key. ok is false when the key is unset or empty.
func (l *Loader) boolValue(key, env string) (value, ok bool, err error) {
	if !l.v.IsSet(key) {
		return false, false, nil
	}
	raw := strings.TrimSpace(l.v.GetString(key))
	if raw == "" {
		return false, false, nil
	}
	value, err = strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("invalid value %q for %s: expected true or false", raw, env)
	}
	return value, true, nil
}

// Load reads the configuration from the environment using a fresh Loader.
func Load() (*Config, error) {
	return NewLoader().Load()
}
