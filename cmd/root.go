package cmd

import (
	"fmt"
	"os"

	"translation-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Persistent overrides for the storage configuration
	localesDir    string
	localesFormat string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "translation-manager",
	Short: "Translation file maintenance",
	Long: `Translation Manager keeps a directory of nested translation documents
aligned with a primary locale. It copies new keys, trims dead ones, removes
keys everywhere and walks through missing translations interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, the same as interactive runs
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&localesDir, "dir", "", "Directory holding the locale documents (overrides STORAGE_DIR)")
	RootCmd.PersistentFlags().StringVar(&localesFormat, "format", "", "Document format, json or toml (overrides STORAGE_FORMAT)")
}
