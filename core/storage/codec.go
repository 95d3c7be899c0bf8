package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"translation-manager/core/tree"

	"github.com/pelletier/go-toml/v2"
)

// Indent is the indentation of serialized JSON documents.
const Indent = "    "

// Codec converts between serialized documents and trees.
type Codec interface {
	// Extension is the file extension, including the dot.
	Extension() string
	Decode(data []byte) (*tree.Value, error)
	Encode(doc *tree.Value) ([]byte, error)
}

// NewCodec returns the codec for a configured format.
func NewCodec(format string) (Codec, error) {
	switch format {
	case FormatJSON, "":
		return JSONCodec{}, nil
	case FormatTOML:
		return TOMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

// JSONCodec writes keys in sorted order, indented by four spaces, with
// non-ASCII characters and HTML-significant characters kept literal.
type JSONCodec struct{}

func (JSONCodec) Extension() string { return ".json" }

func (JSONCodec) Decode(data []byte) (*tree.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid json: trailing data after document")
	}
	return decodeRoot(raw)
}

func (JSONCodec) Encode(doc *tree.Value) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(doc.ToAny()); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators writes U+2028 and U+2029 literally. encoding/json
// escapes them regardless of SetEscapeHTML; an escaped backslash followed by
// the same text is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		switch rest := data[i+1:]; {
		case bytes.HasPrefix(rest, []byte("u2028")):
			out = append(out, "\u2028"...)
			i += 5
		case bytes.HasPrefix(rest, []byte("u2029")):
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, data[i], data[i+1])
			i++
		}
	}
	return out
}

// TOMLCodec stores nested Nodes as TOML tables.
type TOMLCodec struct{}

func (TOMLCodec) Extension() string { return ".toml" }

func (TOMLCodec) Decode(data []byte) (*tree.Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid toml: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return decodeRoot(raw)
}

func (TOMLCodec) Encode(doc *tree.Value) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return toml.Marshal(doc.ToAny())
}

func decodeRoot(raw any) (*tree.Value, error) {
	if _, ok := raw.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: document root must be an object, got %T", tree.ErrMalformedTree, raw)
	}
	return tree.FromAny(raw)
}
