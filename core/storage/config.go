package storage

// Config holds configuration for the document store.
type Config struct {
	// Dir is the directory holding one document per locale.
	Dir string `mapstructure:"dir" default:"../locales"`
	// Format is the document encoding (json, toml).
	Format string `mapstructure:"format" default:"json"`
}

const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// IsValidFormat checks if the configured format is supported.
func (c Config) IsValidFormat() bool {
	switch c.Format {
	case FormatJSON, FormatTOML:
		return true
	default:
		return false
	}
}
