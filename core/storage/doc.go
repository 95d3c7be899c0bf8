// Package storage provides the document store the translation commands read
// from and write to.
//
// Documents live one per locale in a directory (e.g. locales/en.json,
// locales/ja.json); the identifier of a document is its file name without
// extension.
//
// # Store Interface
//
// The Store interface abstracts the backing medium, making it easier to mock
// document access for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - List: Identifiers of every document in the directory, sorted.
//   - Load: Reads and decodes a document; ErrDocumentNotFound if missing.
//   - Save: Replaces a document atomically (temp file + rename).
//
// # Formats
//
// JSON is the canonical format: keys sorted, four-space indentation, non-ASCII
// text written literally. TOML documents are supported through go-toml, with
// Nodes stored as tables. Any value that is neither a string nor an object is
// rejected as tree.ErrMalformedTree.
//
// # Usage
//
//	store, err := storage.NewStore(cfg.Storage)
//	doc, err := store.Load(ctx, "ja")
//	err = store.Save(ctx, "ja", doc)
package storage
