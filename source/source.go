// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source provides composable sources of raw, uncoerced
// environment values.
package source

// Store represents a flat key value structure. Environment values
// are always strings at this layer; typing happens downstream.
type Store interface {
	Set(key, value string) error
}

// Source defines valid environment sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Map is an ordinary map[string]string but implements both the
// Source and Store interfaces.
type Map map[string]string

// Set implements the Store interface.
func (m Map) Set(key, value string) error {
	m[key] = value
	return nil
}

// Apply implements the Source interface.
func (m Map) Apply(store Store) error {
	for k, v := range m {
		err := store.Set(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

// Resolve merges the given sources into one flat mapping.
// Subsequent sources override previous sources.
func Resolve(srcs ...Source) (Map, error) {
	m := make(Map)
	for _, src := range srcs {
		err := src.Apply(m)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}
