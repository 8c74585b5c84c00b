// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envschema

import (
	"fmt"
	"os"

	"github.com/z5labs/envschema/source"

	"github.com/go-viper/mapstructure/v2"
)

// Option is used to configure how [Load] resolves the raw environment.
type Option func(*loader)

type loader struct {
	srcs []source.Source
}

// EnvFile overlays key/value pairs parsed from the named dotenv file
// on top of any previously registered sources. By default a missing
// file is skipped and the remaining sources are used alone; see
// [source.Require] for the strict variant.
func EnvFile(path string, opts ...source.FileOption) Option {
	return func(l *loader) {
		l.srcs = append(l.srcs, source.FromFile(path, opts...))
	}
}

// WithSources replaces the ambient process environment with the
// given sources. Subsequent sources override previous sources.
func WithSources(srcs ...source.Source) Option {
	return func(l *loader) {
		l.srcs = srcs
	}
}

// Load resolves the raw environment, validates it against schema
// and returns the fully coerced [Config].
//
// The raw environment defaults to the ambient process environment;
// [EnvFile] overlays a dotenv file on top of it and [WithSources]
// replaces it entirely. If any source fails, Load returns a
// [SourceError] before validation begins. If validation finds
// violations, Load returns a [ValidationError] carrying the full
// [Report] and no Config.
func Load(schema Schema, opts ...Option) (Config, error) {
	l := loader{
		srcs: []source.Source{source.FromEnv()},
	}
	for _, opt := range opts {
		opt(&l)
	}

	environ, err := source.Resolve(l.srcs...)
	if err != nil {
		return nil, SourceError{Cause: err}
	}

	cfg, report := Validate(schema, environ)
	if len(report) > 0 {
		return nil, ValidationError{Report: report}
	}
	return cfg, nil
}

// MustLoad is the halt posture of [Load]: on any failure it prints
// the consolidated report to stderr and exits the process with a
// non-zero status. Intended for top-level application startup;
// embedded callers should use [Load] and let their host decide.
func MustLoad(schema Schema, opts ...Option) Config {
	cfg, err := Load(schema, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

// Decode decodes a validated [Config] into v, which must be a
// pointer to a struct. Fields are matched by name, case
// insensitively, or by an `env` struct tag.
func Decode(cfg Config, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "env",
		Result:  v,
	})
	if err != nil {
		return DecodeError{Cause: err}
	}

	err = dec.Decode(map[string]any(cfg))
	if err != nil {
		return DecodeError{Cause: err}
	}
	return nil
}

// LoadAs combines [Load] and [Decode] to produce a caller defined
// struct directly from the environment.
func LoadAs[T any](schema Schema, opts ...Option) (T, error) {
	var v T
	cfg, err := Load(schema, opts...)
	if err != nil {
		return v, err
	}

	err = Decode(cfg, &v)
	if err != nil {
		return v, err
	}
	return v, nil
}
