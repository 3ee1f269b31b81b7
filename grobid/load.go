package grobid

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lehigh-university-libraries/grobidmeta/record"
	"github.com/lehigh-university-libraries/grobidmeta/tree"
)

// Load opens the document at path, checks that it was produced by an
// accepted GROBID version and extracts its metadata.
// Every failure is returned as a *LoadError.
func Load(path string, opts Options) (*record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindOpen, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f, path, opts)
}

// LoadReader is Load for an already opened stream; name identifies the
// stream in errors and diagnostics.
func LoadReader(r io.Reader, name string, opts Options) (rec *record.Record, err error) {
	defer func() {
		if p := recover(); p != nil {
			rec = nil
			err = &LoadError{Kind: KindParse, Path: name, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	root, err := opts.parser().Parse(r)
	if err != nil {
		kind := KindParse
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			kind = KindOpen
		}
		return nil, &LoadError{Kind: kind, Path: name, Err: err}
	}

	version, err := GeneratorVersion(root)
	if err != nil {
		return nil, &LoadError{Kind: KindNoGenerator, Path: name, Err: err}
	}
	if !opts.accepts(version) {
		return nil, &LoadError{Kind: KindUnsupportedVersion, Path: name, Version: version}
	}

	return ExtractRecord(root), nil
}

// GeneratorVersion returns the version attribute of the GROBID
// application element.
func GeneratorVersion(root tree.Node) (string, error) {
	app, ok := root.Find("application", tree.Attr{Name: "ident", Value: GeneratorIdent})
	if !ok {
		return "", ErrNoGenerator
	}
	version, ok := app.Attr("version")
	if !ok {
		return "", fmt.Errorf("%w: application element has no version", ErrNoGenerator)
	}
	return version, nil
}

// Extract returns the metadata of the document at path, or an empty
// record if the document is unreadable, unparseable, not from GROBID or
// from a version outside versions.
func Extract(path string, versions []string) *record.Record {
	return ExtractWith(path, Options{Versions: versions})
}

// ExtractWith is Extract with full options.
func ExtractWith(path string, opts Options) *record.Record {
	rec, err := Load(path, opts)
	return collapse(rec, err, path, opts)
}

// ExtractReader is ExtractWith for a stream.
func ExtractReader(r io.Reader, name string, opts Options) *record.Record {
	rec, err := LoadReader(r, name, opts)
	return collapse(rec, err, name, opts)
}

func collapse(rec *record.Record, err error, name string, opts Options) *record.Record {
	if err == nil {
		return rec
	}
	var le *LoadError
	if !errors.As(err, &le) || !le.Benign() {
		opts.logger().Debug("error with grobid document", "path", name, "err", err)
	}
	return &record.Record{}
}
