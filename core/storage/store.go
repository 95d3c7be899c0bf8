package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"translation-manager/core/tree"
)

var (
	// ErrDocumentNotFound is returned when an identifier has no backing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDirectoryNotFound is returned when the configured directory is missing.
	ErrDirectoryNotFound = errors.New("document directory not found")
)

// Store defines the interface for document operations.
type Store interface {
	// List returns the identifiers of every stored document, sorted.
	List(ctx context.Context) ([]string, error)
	// Load reads and decodes the document stored under id.
	Load(ctx context.Context, id string) (*tree.Value, error)
	// Save replaces the document stored under id.
	Save(ctx context.Context, id string, doc *tree.Value) error
	// Location describes where id is stored, for messages.
	Location(id string) string
}

// NewStore creates a file-backed Store based on the configuration.
func NewStore(cfg Config) (Store, error) {
	codec, err := NewCodec(cfg.Format)
	if err != nil {
		return nil, err
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	return &fileStore{dir: dir, codec: codec}, nil
}

// fileStore keeps one file per document: <dir>/<id><ext>.
type fileStore struct {
	dir   string
	codec Codec
}

func (s *fileStore) Location(id string) string {
	return filepath.Join(s.dir, id+s.codec.Extension())
}

func (s *fileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := os.Stat(s.dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, s.dir)
	}

	ext := s.codec.Extension()
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+ext))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(filepath.Base(m), ext))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *fileStore) Load(ctx context.Context, id string) (*tree.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := s.Location(id)
	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrDocumentNotFound, id, name)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	doc, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return doc, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the target, so readers never see a partially written document.
func (s *fileStore) Save(ctx context.Context, id string, doc *tree.Value) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !doc.IsNode() {
		return fmt.Errorf("%w: document %s root is a %s", tree.ErrMalformedTree, id, doc.Kind())
	}
	data, err := s.codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", id, err)
	}

	name := s.Location(id)
	tmp, err := os.CreateTemp(s.dir, "."+id+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmpName, name); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
