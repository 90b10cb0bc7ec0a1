package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smallyu/go-ecmath/internal/logging"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{{
		name: "yaml",
		file: "ecmath.yaml",
		content: `
signer:
  curve: secp256k1
  hash: SHA3-256
  nonce: RFC6979
  nafWidth: 6
  lowS: true
logging:
  level: debug
  format: json
`,
	}, {
		name: "json",
		file: "ecmath.json",
		content: `{
  "signer": {"curve": "secp256k1", "hash": "SHA3-256", "nonce": "rfc6979", "nafWidth": 6, "lowS": true},
  "logging": {"level": "debug", "format": "json"}
}`,
	}, {
		name: "toml",
		file: "ecmath.toml",
		content: `
[signer]
curve = "secp256k1"
hash = "SHA3-256"
nonce = " rfc6979 "
nafWidth = 6
lowS = true

[logging]
level = "debug"
format = "json"
`,
	}}

	want := &Config{
		Signer: Signer{
			Curve:    "secp256k1",
			Hash:     "SHA3-256",
			Nonce:    NonceRFC6979,
			NAFWidth: 6,
			LowS:     true,
		},
		Logging: Logging{Level: "debug", Format: "json"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := Load(writeFile(t, test.file, test.content))
			require.NoError(t, err)
			assert.Equal(t, want, c)
		})
	}
}

func TestLoadPartialFile(t *testing.T) {
	c, err := Load(writeFile(t, "ecmath.yaml", "signer:\n  curve: brainpool384r1\n"))
	require.NoError(t, err)
	assert.Equal(t, "brainpool384r1", c.Signer.Curve)
	assert.Equal(t, NonceRandom, c.Signer.Nonce)
	assert.Equal(t, 4, c.Signer.NAFWidth)
	assert.Equal(t, "info", c.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ECMATH_SIGNER_CURVE", "P-521")
	t.Setenv("ECMATH_SIGNER_NAFWIDTH", "7")
	t.Setenv("ECMATH_SIGNER_LOWS", "true")
	t.Setenv("ECMATH_LOGGING_FORMAT", "json")

	c, err := Load(writeFile(t, "ecmath.yaml", "signer:\n  curve: P-224\n  nafWidth: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "P-521", c.Signer.Curve)
	assert.Equal(t, 7, c.Signer.NAFWidth)
	assert.True(t, c.Signer.LowS)
	assert.Equal(t, "json", c.Logging.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"unknown key", "signer:\n  curve: P-256\n  colour: blue\n", "decoding config"},
		{"unknown curve", "signer:\n  curve: uncrackableCurve\n", "signer.curve"},
		{"unknown hash", "signer:\n  hash: MD5\n", "signer.hash"},
		{"unknown nonce policy", "signer:\n  nonce: counter\n", "signer.nonce"},
		{"NAF width", "signer:\n  nafWidth: 12\n", "signer.nafWidth"},
		{"log level", "logging:\n  level: loud\n", "logging.level"},
		{"log format", "logging:\n  format: xml\n", "logging.format"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "ecmath.yaml", test.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ecmath.ErrInvalidConfig), "got %v", err)
			assert.Contains(t, err.Error(), test.msg)
		})
	}
}

func TestApplyLogging(t *testing.T) {
	defer func() {
		require.NoError(t, logging.Init(logging.Config{}))
	}()

	c := Default()
	c.Logging.Format = "json"
	require.NoError(t, c.ApplyLogging())

	var buf bytes.Buffer
	require.NoError(t, logging.Init(logging.Config{Level: c.Logging.Level, Format: c.Logging.Format, Writer: &buf}))
	logging.MustGetLogger("config").Infow("applied")
	assert.Contains(t, buf.String(), `"msg":"applied"`)

	c.Logging.Level = "loud"
	assert.True(t, errors.Is(c.ApplyLogging(), ecmath.ErrInvalidConfig))
}
