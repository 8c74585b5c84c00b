// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envschema

// Type is a tag identifying which primitive type an
// environment variable should be coerced to.
type Type uint

const (
	// Invalid is the zero Type. It is not a usable tag and any
	// key declared with it is reported as having an unsupported type.
	Invalid Type = iota

	// String accepts any non-empty value unchanged.
	String

	// Number accepts any value strconv.ParseFloat can parse to a
	// finite float64.
	Number

	// Bool accepts exactly the literals "true" and "false".
	Bool
)

// String implements the [fmt.Stringer] interface.
func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	default:
		return "invalid"
	}
}

// Spec is a single schema entry. It is a closed union: a bare [Type]
// tag or a [Field] descriptor.
type Spec interface {
	spec()
}

func (Type) spec() {}

// Field declares an environment variable along with its optionality
// and an optional fallback value.
//
// The zero value of Optional means required, so a Field is required
// unless Optional is explicitly set. Setting Default alone does not
// make a Field optional.
type Field struct {
	Type     Type
	Optional bool

	// Default is used in place of a missing value for optional
	// fields. It must already be of the declared type; it is
	// placed into the [Config] as-is, without coercion. It is
	// never consulted for required fields.
	Default any
}

func (Field) spec() {}

// descriptor is the canonical form every Spec normalizes to
// before validation.
type descriptor struct {
	typ      Type
	required bool
	def      any
}

// normalize never fails. An unusable type tag is carried through
// and reported per key at validation time.
func normalize(s Spec) descriptor {
	switch x := s.(type) {
	case Type:
		return descriptor{typ: x, required: true}
	case Field:
		return descriptor{typ: x.Type, required: !x.Optional, def: x.Default}
	default:
		return descriptor{required: true}
	}
}

// provided reports whether key has a usable value in environ.
// A key set to the empty string is treated the same as an unset
// key, for both the required check and default application.
func provided(environ map[string]string, key string) (string, bool) {
	v, ok := environ[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
