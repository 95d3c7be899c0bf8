package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrInvalidLocale is returned for identifiers that are not language tags.
var ErrInvalidLocale = errors.New("invalid locale")

// Parse validates code and returns its language tag.
func Parse(code string) (language.Tag, error) {
	if code == "" {
		return language.Und, fmt.Errorf("%w: empty code", ErrInvalidLocale)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: check that it is an ISO 639-1 language code: %v", ErrInvalidLocale, code, err)
	}
	return tag, nil
}

// Describe renders code with its English display name, e.g. "ja (Japanese)".
// Codes that do not parse, or have no known name, are returned unchanged.
func Describe(code string) string {
	tag, err := Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", code, name)
}
