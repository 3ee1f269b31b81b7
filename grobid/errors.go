package grobid

import (
	"errors"
	"fmt"
)

// Kind classifies a load failure.
type Kind int

const (
	// KindOpen means the document could not be opened or read.
	KindOpen Kind = iota + 1
	// KindParse means the markup could not be parsed, or extraction panicked.
	KindParse
	// KindNoGenerator means no GROBID application element with a version was found.
	KindNoGenerator
	// KindUnsupportedVersion means the GROBID version is not accepted.
	KindUnsupportedVersion
)

// Sentinel errors matched by errors.Is against a *LoadError of the same kind.
var (
	ErrOpen               = errors.New("cannot open document")
	ErrParse              = errors.New("cannot parse document")
	ErrNoGenerator        = errors.New("no GROBID generator element")
	ErrUnsupportedVersion = errors.New("unsupported GROBID version")
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindParse:
		return "parse"
	case KindNoGenerator:
		return "no-generator"
	case KindUnsupportedVersion:
		return "unsupported-version"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindOpen:
		return ErrOpen
	case KindParse:
		return ErrParse
	case KindNoGenerator:
		return ErrNoGenerator
	case KindUnsupportedVersion:
		return ErrUnsupportedVersion
	default:
		return nil
	}
}

// LoadError describes why a document produced no metadata.
type LoadError struct {
	Kind Kind

	// Path names the document (a file path, or a caller-chosen stream name).
	Path string

	// Version is the GROBID version found, set for KindUnsupportedVersion.
	Version string

	// Err is the underlying cause, if any.
	Err error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Path, e.Kind.sentinel())
	if e.Version != "" {
		msg += fmt.Sprintf(" %q", e.Version)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *LoadError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Benign reports whether the failure is an expected outcome rather than a
// problem with the document. Only version mismatches are benign.
func (e *LoadError) Benign() bool {
	return e.Kind == KindUnsupportedVersion
}
