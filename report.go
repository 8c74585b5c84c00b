// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envschema

import (
	"fmt"
	"strings"
)

// Reason identifies why a key failed validation.
type Reason uint

const (
	// MissingRequired means a required key had no usable value
	// and no default.
	MissingRequired Reason = iota

	// NotANumber means the value could not be parsed as a
	// finite number.
	NotANumber

	// NotABoolean means the value was neither of the literals
	// "true" or "false".
	NotABoolean

	// UnsupportedType means the schema declared a type tag other
	// than String, Number or Bool.
	UnsupportedType
)

// Violation records a single failed key. A key appears in a
// [Report] at most once.
type Violation struct {
	Key    string
	Reason Reason
}

// Error implements the error interface.
func (v Violation) Error() string {
	switch v.Reason {
	case MissingRequired:
		return fmt.Sprintf("Missing required field: %s", v.Key)
	case NotANumber:
		return fmt.Sprintf("%s should be a number", v.Key)
	case NotABoolean:
		return fmt.Sprintf("%s should be a boolean", v.Key)
	case UnsupportedType:
		return fmt.Sprintf("%s has an unsupported type", v.Key)
	default:
		return fmt.Sprintf("%s failed validation", v.Key)
	}
}

// Report is an ordered list of violations. Order follows the
// schema's keys sorted lexicographically, so a given schema and
// environment always produce the same report.
type Report []Violation

// ValidationError is the raise posture of a non-empty [Report]:
// one error whose message is the consolidated listing, one line
// per violation.
type ValidationError struct {
	Report Report
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	msgs := make([]string, len(e.Report))
	for i, v := range e.Report {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Report))
	for i, v := range e.Report {
		errs[i] = v
	}
	return errs
}

// SourceError occurs when the raw environment could not be
// resolved from its sources before validation began.
type SourceError struct {
	Cause error
}

// Error implements the error interface.
func (e SourceError) Error() string {
	return fmt.Sprintf("failed to resolve environment source(s): %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e SourceError) Unwrap() error {
	return e.Cause
}

// DecodeError occurs when a validated [Config] could not be
// decoded into the caller's struct.
type DecodeError struct {
	Cause error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode validated config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e DecodeError) Unwrap() error {
	return e.Cause
}
