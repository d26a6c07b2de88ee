// Package pfserrors defines the typed error taxonomy used across the
// portable filesystem packages.
package pfserrors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a portable filesystem error.
type Kind int

const (
	// Read indicates a read-path I/O failure: directory listing, metadata,
	// file open/read, strip-prefix mismatch, or task join.
	Read Kind = iota
	// Write indicates a file write or mtime-set failure.
	Write
	// Delete indicates a file removal failure.
	Delete
	// Create indicates a directory creation failure during write parent
	// preparation.
	Create
	// Parse indicates a bad RFC 3339 mtime.
	Parse
	// Sync indicates a channel send failure during walker emission.
	Sync
	// FileExists indicates write was called without overwrite on an
	// existing file.
	FileExists
	// InvalidArgument indicates a bad component, a missing file on
	// read/delete, or a directory passed where a file was expected.
	InvalidArgument
	// InvalidPath indicates a missing basename when converting a FileInfo
	// to a DirectoryEntry, or a lookup against a nonexistent path.
	InvalidPath
)

func (k Kind) String() string {
	switch k {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Delete:
		return "Delete"
	case Create:
		return "Create"
	case Parse:
		return "Parse"
	case Sync:
		return "Sync"
	case FileExists:
		return "FileExists"
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidPath:
		return "InvalidPath"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by every package in this
// module. Its shape mirrors the tagged union in spec.md §7: most kinds
// carry a "what"/"how" pair, while FileExists, InvalidArgument and
// InvalidPath carry a single message.
type Error struct {
	Kind  Kind
	What  string
	How   string
	cause error
}

// Error implements the error interface, formatting the message the same
// way as the original taxonomy's display strings.
func (e *Error) Error() string {
	switch e.Kind {
	case FileExists:
		return fmt.Sprintf("file already exists: %s", e.What)
	case InvalidArgument:
		return fmt.Sprintf("invalid argument: %s", e.What)
	case InvalidPath:
		return fmt.Sprintf("invalid path: %s", e.What)
	default:
		return fmt.Sprintf("%s failed for %s: %s", e.Kind, e.What, e.How)
	}
}

// Unwrap allows errors.Is/errors.As to reach the underlying cause, if
// one was recorded.
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause implements the github.com/pkg/errors causer interface, so an
// *Error wrapped by pkg/errors.Wrap at a call site still unwraps all the
// way to the original OS error via pkg/errors.Cause.
func (e *Error) Cause() error {
	return e.cause
}

// newf builds an Error of the given kind with a "what"/"how" pair,
// recording cause for unwrapping when present.
func newf(kind Kind, what string, cause error) *Error {
	how := ""
	if cause != nil {
		how = cause.Error()
	}
	return &Error{Kind: kind, What: what, How: how, cause: cause}
}

// Readf builds a Read error.
func Readf(what string, cause error) *Error { return newf(Read, what, cause) }

// Writef builds a Write error.
func Writef(what string, cause error) *Error { return newf(Write, what, cause) }

// Deletef builds a Delete error.
func Deletef(what string, cause error) *Error { return newf(Delete, what, cause) }

// Createf builds a Create error.
func Createf(what string, cause error) *Error { return newf(Create, what, cause) }

// Parsef builds a Parse error.
func Parsef(what string, cause error) *Error { return newf(Parse, what, cause) }

// Syncf builds a Sync error.
func Syncf(what string, cause error) *Error { return newf(Sync, what, cause) }

// FileExistsf builds a FileExists error carrying just a path.
func FileExistsf(path string) *Error { return &Error{Kind: FileExists, What: path} }

// InvalidArgumentf builds an InvalidArgument error carrying a message.
func InvalidArgumentf(message string) *Error { return &Error{Kind: InvalidArgument, What: message} }

// InvalidPathf builds an InvalidPath error carrying a description.
func InvalidPathf(what string) *Error { return &Error{Kind: InvalidPath, What: what} }

// Is reports whether err is a *Error of the given kind, so callers can
// write `pfserrors.Is(err, pfserrors.FileExists)`.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
