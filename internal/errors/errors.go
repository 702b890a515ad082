// Package errors provides sentinel error kinds for the scaffolding pipeline.
// Every failure that crosses a package boundary wraps one of them so the
// command layer can classify it with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork indicates a failed template download (transport error,
	// unexpected status, redirect problems).
	ErrNetwork = errors.New("network error")

	// ErrArchive indicates a malformed or unsafe template archive.
	ErrArchive = errors.New("archive error")

	// ErrFilesystem indicates a failed copy, move, rename or rewrite.
	ErrFilesystem = errors.New("filesystem error")

	// ErrValidation indicates an invalid scaffold configuration.
	ErrValidation = errors.New("validation error")
)

// kindError attaches a sentinel kind to an underlying error without changing
// its message.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string { return e.cause.Error() }

func (e *kindError) Unwrap() []error { return []error{e.cause, e.kind} }

// Mark tags err with the given sentinel kind. The returned error keeps err's
// message and matches both err and kind under errors.Is. Mark(nil) is nil.
func Mark(kind, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return err
	}
	return &kindError{kind: kind, cause: err}
}

// Wrap wraps a sentinel error with a message.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Hint returns a short piece of actionable guidance for a classified error,
// or "" when the error carries no known kind.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrNetwork):
		return "check your connection or set template.url to a reachable archive"
	case errors.Is(err, ErrArchive):
		return "the downloaded template archive could not be unpacked safely"
	case errors.Is(err, ErrFilesystem):
		return "the target directory may be partially written; inspect it before retrying"
	case errors.Is(err, ErrValidation):
		return "fix the highlighted value and run the command again"
	}
	return ""
}
