package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/havrydotdev/classbox/types"
)

var ErrUnknownFormat = errors.New("unknown config format")

// Config holds the interpreter settings. TOML and YAML keys use the Go
// field names.
type Config struct {
	Prompt         string `yaml:"Prompt"`
	HistoryFile    string `toml:",omitempty" yaml:"HistoryFile"`
	FieldCacheSize int    `yaml:"FieldCacheSize"`
	LogLevel       string `yaml:"LogLevel"`
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func Default() Config {
	cfg := Config{
		Prompt:         "> ",
		FieldCacheSize: types.DefaultFieldCacheSize,
		LogLevel:       "warn",
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".classbox_history")
	}

	return cfg
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, or .yaml/.yml.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&cfg)
		// Add file name to errors that have a line number.
		if _, ok := err.(*toml.LineError); ok {
			err = errors.New(path + ", " + err.Error())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err == io.EOF {
			err = nil
		}
	default:
		return cfg, errors.Wrapf(ErrUnknownFormat, "%s", path)
	}

	if err != nil {
		return cfg, errors.Wrapf(err, "load %s", path)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.FieldCacheSize <= 0 {
		return errors.Errorf("FieldCacheSize must be positive, got %d", c.FieldCacheSize)
	}

	_, err := c.Level()
	return err
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return lvl, nil
	}

	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, errors.Wrapf(err, "LogLevel")
	}

	return lvl, nil
}

// Dump writes cfg to w as TOML.
func Dump(w io.Writer, cfg Config) error {
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
