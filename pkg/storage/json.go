package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Status tells how a document load went.
type Status int

const (
	Ok Status = iota
	Absent
	Corrupt
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case Absent:
		return "absent"
	case Corrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Load. Callers that only care about the data
// treat Absent and Corrupt the same way and fall back to defaults.
type Result struct {
	Status Status
	Err    error // set when Status is Corrupt
}

// Found reports whether the document was decoded.
func (r Result) Found() bool {
	return r.Status == Ok
}

// Document is a JSON document persisted somewhere.
type Document interface {
	Load(v any) Result
	Save(v any) error
}

// File is a Document stored as an indented UTF-8 JSON file.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// Load decodes the file into v. It never returns an error: a missing file is
// Absent, an unreadable or malformed one is Corrupt.
func (f *File) Load(v any) Result {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Status: Absent}
		}
		return Result{Status: Corrupt, Err: err}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return Result{Status: Corrupt, Err: fmt.Errorf("decode %s: %w", filepath.Base(f.Path), err)}
	}

	return Result{Status: Ok}
}

// Save rewrites the whole file. Write errors are returned as-is.
func (f *File) Save(v any) error {
	raw, err := Encode(v)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", f.Path, err)
	}

	return os.WriteFile(f.Path, raw, 0o644)
}

// Exists reports whether the file is present on disk.
func (f *File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// Encode renders v as two-space indented JSON without escaping non-ASCII
// characters or HTML.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}
