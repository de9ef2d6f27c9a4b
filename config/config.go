package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frizinak/inbetween-go-swipe/swipe"
	"github.com/spf13/viper"
)

const EnvPrefix = "SWIPE"

type Config struct {
	Scheme          string
	MinimumDistance int
	Fingers         int
	SuppressDefault bool
	Log             Log
}

type Log struct {
	Level  string
	Format string
}

func Default() Config {
	return Config{
		Scheme:          swipe.SchemeCompass.String(),
		MinimumDistance: swipe.DefaultMinimumDistance,
		Fingers:         1,
		SuppressDefault: true,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c Config) Tracker() (swipe.Config, error) {
	scheme, ok := swipe.ParseScheme(c.Scheme)
	if !ok {
		return swipe.Config{}, &swipe.ConfigurationError{Reason: fmt.Sprintf("unknown scheme %q", c.Scheme)}
	}
	if c.MinimumDistance <= 0 {
		return swipe.Config{}, &swipe.ConfigurationError{Reason: "minimum distance must be positive"}
	}

	return swipe.Config{Scheme: scheme, MinimumDistance: c.MinimumDistance}, nil
}

func DefaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	return filepath.Join(home, ".config", "swipe", "config.json"), err
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("scheme", d.Scheme)
	v.SetDefault("minimumdistance", d.MinimumDistance)
	v.SetDefault("fingers", d.Fingers)
	v.SetDefault("suppressdefault", d.SuppressDefault)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads file on top of the defaults, SWIPE_* environment
// variables take precedence. A missing file returns an os.IsNotExist error
// together with the default config.
func LoadConfig(file string) (Config, error) {
	v := newViper()
	c := Config{}
	var fileErr error
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("json")
		if _, err := os.Stat(file); err != nil {
			fileErr = err
		} else if err := v.ReadInConfig(); err != nil {
			return Default(), fmt.Errorf("reading %s: %w", file, err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return Default(), fmt.Errorf("decoding config: %w", err)
	}

	return c, fileErr
}

func EnsureConfig(file string) error {
	dirs := filepath.Dir(file)
	if err := os.MkdirAll(dirs, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	return enc.Encode(Default())
}
