// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envschema

import (
	"testing"
	"testing/fstest"

	"github.com/z5labs/envschema/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("will return a config", func(t *testing.T) {
		t.Run("if every schema key resolves", func(t *testing.T) {
			schema := Schema{
				"PORT":  Number,
				"DEBUG": Bool,
			}

			cfg, err := Load(schema, WithSources(source.Map{
				"PORT":  "3000",
				"DEBUG": "false",
			}))
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Config{"PORT": 3000.0, "DEBUG": false}, cfg) {
				return
			}
		})

		t.Run("if a dotenv file overlays the ambient source", func(t *testing.T) {
			fsys := fstest.MapFS{
				".env": &fstest.MapFile{
					Data: []byte("HOST=example.com\n"),
				},
			}

			schema := Schema{
				"HOST": String,
				"PORT": Number,
			}

			cfg, err := Load(schema,
				WithSources(source.Map{
					"HOST": "localhost",
					"PORT": "3000",
				}),
				EnvFile(".env", source.FS(fsys)),
			)
			if !assert.Nil(t, err) {
				return
			}

			// the file value wins, the ambient value remains for PORT
			if !assert.Equal(t, Config{"HOST": "example.com", "PORT": 3000.0}, cfg) {
				return
			}
		})
	})

	t.Run("will return a ValidationError", func(t *testing.T) {
		t.Run("if any schema key fails to resolve", func(t *testing.T) {
			schema := Schema{
				"PORT": Number,
			}

			cfg, err := Load(schema, WithSources(source.Map{}))
			if !assert.Nil(t, cfg) {
				return
			}

			var verr ValidationError
			if !assert.ErrorAs(t, err, &verr) {
				return
			}
			if !assert.Equal(t, "Missing required field: PORT", verr.Error()) {
				return
			}
		})
	})

	t.Run("will return a SourceError", func(t *testing.T) {
		t.Run("if a required dotenv file does not exist", func(t *testing.T) {
			schema := Schema{
				"HOST": String,
			}

			_, err := Load(schema,
				WithSources(source.Map{"HOST": "localhost"}),
				EnvFile(".env", source.FS(fstest.MapFS{}), source.Require()),
			)

			var serr SourceError
			if !assert.ErrorAs(t, err, &serr) {
				return
			}

			var merr source.MissingFileError
			if !assert.ErrorAs(t, err, &merr) {
				return
			}
			if !assert.Equal(t, ".env", merr.Path) {
				return
			}
		})
	})
}

func TestDecode(t *testing.T) {
	type serverConfig struct {
		Port    float64 `env:"PORT"`
		Host    string  `env:"HOST"`
		Debug   bool    `env:"DEBUG"`
		Workers int     `env:"WORKERS"`
	}

	t.Run("will decode into a struct", func(t *testing.T) {
		t.Run("if fields are matched by env tag", func(t *testing.T) {
			cfg := Config{
				"PORT":    3000.0,
				"HOST":    "localhost",
				"DEBUG":   true,
				"WORKERS": 4.0,
			}

			var sc serverConfig
			err := Decode(cfg, &sc)
			if !assert.Nil(t, err) {
				return
			}

			expected := serverConfig{
				Port:    3000,
				Host:    "localhost",
				Debug:   true,
				Workers: 4,
			}
			if !assert.Equal(t, expected, sc) {
				return
			}
		})
	})

	t.Run("will return a DecodeError", func(t *testing.T) {
		t.Run("if a value does not fit the target field", func(t *testing.T) {
			cfg := Config{
				"HOST": "localhost",
			}

			var sc struct {
				Host bool `env:"HOST"`
			}
			err := Decode(cfg, &sc)

			var derr DecodeError
			if !assert.ErrorAs(t, err, &derr) {
				return
			}
		})
	})
}

func TestLoadAs(t *testing.T) {
	type serverConfig struct {
		Port  float64 `env:"PORT"`
		Debug bool    `env:"DEBUG"`
	}

	schema := Schema{
		"PORT":  Number,
		"DEBUG": Field{Type: Bool, Optional: true, Default: false},
	}

	t.Run("returns a typed struct on success", func(t *testing.T) {
		sc, err := LoadAs[serverConfig](schema, WithSources(source.Map{
			"PORT": "3000",
		}))
		require.NoError(t, err)
		require.Equal(t, serverConfig{Port: 3000}, sc)
	})

	t.Run("surfaces the full report on failure", func(t *testing.T) {
		_, err := LoadAs[serverConfig](schema, WithSources(source.Map{
			"PORT":  "not-number",
			"DEBUG": "not-boolean",
		}))

		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Report, 2)
	})
}
