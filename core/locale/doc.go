// Package locale validates the locale identifiers used to name documents.
//
// Identifiers are BCP 47 language tags ("en", "ja", "pt-BR"), parsed with
// golang.org/x/text/language. Display names come from the display package and
// are used in interactive prompts ("ja (Japanese)").
package locale
