// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnv represents a Source where its underlying values are
// key=value pairs read from a dotenv style file.
type DotEnv struct {
	fsys    fs.FS
	path    string
	require bool
}

// FileOption is used to configure a DotEnv source.
type FileOption func(*DotEnv)

// FS overrides the filesystem the file is opened from. The default
// filesystem resolves paths with [os.Open].
func FS(fsys fs.FS) FileOption {
	return func(src *DotEnv) {
		src.fsys = fsys
	}
}

// Require makes a missing file an error instead of an empty source.
// Use it when the file was explicitly named by an operator and its
// absence should fail startup.
func Require() FileOption {
	return func(src *DotEnv) {
		src.require = true
	}
}

// FromFile returns a Source which will apply key=value pairs parsed
// from the file at the given path. A missing file applies nothing,
// unless [Require] is set.
func FromFile(path string, opts ...FileOption) DotEnv {
	src := DotEnv{
		fsys: osFS{},
		path: path,
	}
	for _, opt := range opts {
		opt(&src)
	}
	return src
}

// ParseError occurs if the file exists but is not valid
// key=value syntax.
type ParseError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("invalid env file %q: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ParseError) Unwrap() error {
	return e.Cause
}

// MissingFileError occurs if a [Require]d file does not exist.
// It unwraps to [fs.ErrNotExist].
type MissingFileError struct {
	Path string
}

// Error implements the error interface.
func (e MissingFileError) Error() string {
	return fmt.Sprintf("env file does not exist: %s", e.Path)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e MissingFileError) Unwrap() error {
	return fs.ErrNotExist
}

// Apply implements the Source interface.
func (src DotEnv) Apply(store Store) (err error) {
	f, err := src.fsys.Open(src.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if src.require {
				return MissingFileError{Path: src.path}
			}
			return nil
		}
		return err
	}
	defer tryClose(&err, f)

	m, err := godotenv.Parse(f)
	if err != nil {
		return ParseError{Path: src.path, Cause: err}
	}
	return Map(m).Apply(store)
}

// tryClose folds a close failure into the caller's returned error.
func tryClose(err *error, c io.Closer) {
	cerr := c.Close()
	if cerr == nil {
		return
	}
	if *err == nil {
		*err = cerr
		return
	}
	*err = errors.Join(*err, cerr)
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
