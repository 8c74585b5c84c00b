// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"io"

	"github.com/z5labs/envschema"

	"gopkg.in/yaml.v3"
)

// fileSpec is the descriptor form of a schema file entry. A bare
// scalar entry is shorthand for {type: <scalar>}.
type fileSpec struct {
	Type     string `yaml:"type"`
	Required *bool  `yaml:"required"`
	Default  any    `yaml:"default"`
}

// InvalidSchemaFileError occurs if the schema file is not valid YAML
// or an entry is neither a scalar type tag nor a descriptor mapping.
type InvalidSchemaFileError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidSchemaFileError) Error() string {
	return fmt.Sprintf("invalid schema file: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidSchemaFileError) Unwrap() error {
	return e.Cause
}

// readSchema parses a YAML schema file mapping variable names to
// either a type tag ("string", "number", "bool") or a descriptor
// with type, required and default fields.
//
// An unrecognized type tag is not rejected here; it maps to
// [envschema.Invalid] so validation reports it per key alongside
// every other violation.
func readSchema(r io.Reader) (envschema.Schema, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var entries map[string]yaml.Node
	err = yaml.Unmarshal(b, &entries)
	if err != nil {
		return nil, InvalidSchemaFileError{Cause: err}
	}

	schema := make(envschema.Schema, len(entries))
	for key, node := range entries {
		switch node.Kind {
		case yaml.ScalarNode:
			var tag string
			err = node.Decode(&tag)
			if err != nil {
				return nil, InvalidSchemaFileError{Cause: err}
			}
			schema[key] = parseType(tag)
		case yaml.MappingNode:
			var spec fileSpec
			err = node.Decode(&spec)
			if err != nil {
				return nil, InvalidSchemaFileError{Cause: err}
			}
			schema[key] = envschema.Field{
				Type:     parseType(spec.Type),
				Optional: spec.Required != nil && !*spec.Required,
				Default:  normalizeDefault(spec.Default),
			}
		default:
			return nil, InvalidSchemaFileError{
				Cause: fmt.Errorf("entry %q must be a type tag or a mapping", key),
			}
		}
	}
	return schema, nil
}

func parseType(tag string) envschema.Type {
	switch tag {
	case "string":
		return envschema.String
	case "number":
		return envschema.Number
	case "bool", "boolean":
		return envschema.Bool
	default:
		return envschema.Invalid
	}
}

// normalizeDefault widens YAML integers so numeric defaults match
// the float64 values the engine coerces to.
func normalizeDefault(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return v
	}
}
