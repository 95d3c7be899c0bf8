package cmd

import (
	"fmt"
	"io"

	"translation-manager/core/config"
	"translation-manager/core/locale"
	"translation-manager/core/logger"
	"translation-manager/core/storage"
	"translation-manager/feature/locales"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// app is what every command needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *locales.Service
}

// bootstrap loads the configuration, applies flag overrides and wires the service.
// primary overrides the configured primary locale when not empty.
func bootstrap(primary string) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Apply(config.Overrides{
		Dir:     localesDir,
		Format:  localesFormat,
		Primary: primary,
	}); err != nil {
		return nil, err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	store, err := storage.NewStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	l.Debug("Configuration loaded",
		zap.String("dir", cfg.Storage.Dir),
		zap.String("format", cfg.Storage.Format),
		zap.String("primary", locale.Describe(cfg.Locales.Primary)),
	)

	return &app{
		cfg:     cfg,
		logger:  l,
		service: locales.NewService(store, cfg.Locales.Primary, l),
	}, nil
}

// printReport writes one line per document and returns an error if any failed.
func printReport(w io.Writer, report locales.Report, dryRun bool) error {
	for _, res := range report {
		if res.Err != nil {
			fmt.Fprintf(w, "  %-8s FAILED  %v\n", res.Locale, res.Err)
			continue
		}
		status := "saved"
		if !res.Saved {
			status = "unchanged"
		}
		fmt.Fprintf(w, "  %-8s +%d ~%d -%d  %s\n",
			res.Locale, res.Summary.Added, res.Summary.Replaced, res.Summary.Removed, status)
		if dryRun {
			for _, c := range res.Summary.Changes {
				fmt.Fprintf(w, "      %-7s %s (%s)\n", c.Type, c.Path, c.Reason)
			}
		}
	}

	total := report.Total()
	fmt.Fprintf(w, "%d documents, %d added, %d replaced, %d removed", len(report), total.Added, total.Replaced, total.Removed)
	if dryRun {
		fmt.Fprint(w, " (dry run, nothing saved)")
	}
	fmt.Fprintln(w)

	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d of %d documents failed: %w", n, len(report), report.Err())
	}
	return nil
}
