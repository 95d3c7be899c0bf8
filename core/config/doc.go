// Package config provides configuration management for the translation manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
//   - Storage: document directory and format (STORAGE_DIR, STORAGE_FORMAT)
//   - Locales: primary reference locale (LOCALES_PRIMARY)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Apply(config.Overrides{Format: "toml"}); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Dir)
package config
