// Package config loads signer and logging settings from a file and the
// environment.
package config

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/naf"
	"github.com/smallyu/go-ecmath/internal/logging"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/smallyu/go-ecmath/pkg/hashing"
	"github.com/smallyu/go-ecmath/pkg/registry"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Prefix is the environment variable prefix. ECMATH_SIGNER_CURVE overrides
// signer.curve.
const Prefix = "ECMATH"

// NoncePolicy names how signing nonces are chosen.
type NoncePolicy string

const (
	NonceRandom  NoncePolicy = "random"
	NonceRFC6979 NoncePolicy = "rfc6979"
)

type Config struct {
	Signer  Signer  `mapstructure:"signer"`
	Logging Logging `mapstructure:"logging"`
}

// Signer selects the curve and signing behaviour.
type Signer struct {
	// Curve is a registry name such as "P-256".
	Curve string `mapstructure:"curve"`
	// Hash overrides the curve's default hash when non-empty.
	Hash     string      `mapstructure:"hash"`
	Nonce    NoncePolicy `mapstructure:"nonce"`
	NAFWidth int         `mapstructure:"nafWidth"`
	LowS     bool        `mapstructure:"lowS"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var defaults = map[string]interface{}{
	"signer.curve":    "P-256",
	"signer.hash":     "",
	"signer.nonce":    string(NonceRandom),
	"signer.nafWidth": 4,
	"signer.lowS":     false,
	"logging.level":   "info",
	"logging.format":  "console",
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Signer: Signer{
			Curve:    "P-256",
			Nonce:    NonceRandom,
			NAFWidth: 4,
		},
		Logging: Logging{Level: "info", Format: "console"},
	}
}

// Load reads the configuration file at path, if any, applies environment
// overrides and validates the result. The file format follows the
// extension (yaml, json, toml).
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(Prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var c Config
	err := v.Unmarshal(&c, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
		dc.WeaklyTypedInput = true
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			trimSpaceHook,
			noncePolicyHook,
		)
	})
	if err != nil {
		return nil, ecmath.NewError(ecmath.ErrInvalidConfig, "decoding config: %v", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every field against the registry, the hash table and the
// supported ranges.
func (c *Config) Validate() error {
	s := c.Signer
	if _, err := registry.Lookup(s.Curve); err != nil {
		return ecmath.NewError(ecmath.ErrInvalidConfig, "signer.curve: unknown curve %q", s.Curve)
	}
	if s.Hash != "" {
		if _, err := hashing.Parse(s.Hash); err != nil {
			return ecmath.NewError(ecmath.ErrInvalidConfig, "signer.hash: %v", err)
		}
	}
	switch s.Nonce {
	case "", NonceRandom, NonceRFC6979:
	default:
		return ecmath.NewError(ecmath.ErrInvalidConfig, "signer.nonce: unknown policy %q", s.Nonce)
	}
	if s.NAFWidth != 0 && (s.NAFWidth < naf.MinWidth || s.NAFWidth > naf.MaxWidth) {
		return ecmath.NewError(ecmath.ErrInvalidConfig,
			"signer.nafWidth: %d outside [%d, %d]", s.NAFWidth, naf.MinWidth, naf.MaxWidth)
	}

	if c.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
			return ecmath.NewError(ecmath.ErrInvalidConfig, "logging.level: %v", err)
		}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json", "logfmt":
	default:
		return ecmath.NewError(ecmath.ErrInvalidConfig, "logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}

// ApplyLogging reconfigures the process logger.
func (c *Config) ApplyLogging() error {
	return logging.Init(logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
	})
}

func trimSpaceHook(f reflect.Kind, t reflect.Kind, data interface{}) (interface{}, error) {
	if f != reflect.String || t != reflect.String {
		return data, nil
	}
	return strings.TrimSpace(data.(string)), nil
}

// noncePolicyHook accepts policy names in any case.
func noncePolicyHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf(NoncePolicy("")) {
		return data, nil
	}
	return NoncePolicy(strings.ToLower(strings.TrimSpace(data.(string)))), nil
}
