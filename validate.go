// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envschema

import (
	"math"
	"sort"
	"strconv"
)

// Schema maps environment variable names to their declared [Spec].
type Schema map[string]Spec

// Config maps environment variable names to their coerced values:
// string for [String], float64 for [Number], bool for [Bool].
type Config map[string]any

// Validate resolves every schema key against environ and returns
// the coerced values along with every violation found.
//
// Validate visits each key exactly once, in sorted key order, and
// never stops early; a single call reports every misconfigured key
// at once. A non-empty [Report] means the returned [Config] must
// not be used, even though it may hold the keys that did resolve.
//
// Validate is pure: it reads nothing beyond its two arguments and
// never panics.
func Validate(schema Schema, environ map[string]string) (Config, Report) {
	keys := make([]string, 0, len(schema))
	for key := range schema {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cfg := make(Config, len(schema))
	var report Report
	for _, key := range keys {
		d := normalize(schema[key])

		raw, ok := provided(environ, key)
		if !ok {
			if d.required {
				report = append(report, Violation{Key: key, Reason: MissingRequired})
				continue
			}
			if d.def != nil {
				cfg[key] = d.def
			}
			continue
		}

		switch d.typ {
		case String:
			cfg[key] = raw
		case Number:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				report = append(report, Violation{Key: key, Reason: NotANumber})
				continue
			}
			cfg[key] = f
		case Bool:
			switch raw {
			case "true":
				cfg[key] = true
			case "false":
				cfg[key] = false
			default:
				report = append(report, Violation{Key: key, Reason: NotABoolean})
			}
		default:
			report = append(report, Violation{Key: key, Reason: UnsupportedType})
		}
	}
	return cfg, report
}
