package locale

// Config holds configuration for locale selection.
type Config struct {
	// Primary is the reference locale every other document is aligned with.
	Primary string `mapstructure:"primary" default:"en"`
}
