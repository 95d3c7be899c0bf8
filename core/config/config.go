package config

import (
	"fmt"
	"reflect"
	"strings"

	"translation-manager/core/locale"
	"translation-manager/core/logger"
	"translation-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Storage holds configuration for the document directory and format.
	Storage storage.Config `mapstructure:"storage"`
	// Locales holds configuration for locale selection.
	Locales locale.Config `mapstructure:"locales"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
// The result is not validated; call Apply once flag overrides are known.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. STORAGE_DIR -> storage.dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Overrides holds command line values that take precedence over the loaded ones.
// Empty fields keep the loaded value.
type Overrides struct {
	Dir     string
	Format  string
	Primary string
}

// Apply sets the non-empty overrides and validates the result.
func (c *Config) Apply(o Overrides) error {
	if o.Dir != "" {
		c.Storage.Dir = o.Dir
	}
	if o.Format != "" {
		c.Storage.Format = o.Format
	}
	if o.Primary != "" {
		c.Locales.Primary = o.Primary
	}
	return c.Validate()
}

// Validate checks the values that cannot be corrected later.
func (c *Config) Validate() error {
	if !c.Storage.IsValidFormat() {
		return fmt.Errorf("config: unsupported storage format %q", c.Storage.Format)
	}
	if _, err := locale.Parse(c.Locales.Primary); err != nil {
		return fmt.Errorf("config: primary locale: %w", err)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
