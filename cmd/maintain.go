package cmd

import (
	"translation-manager/core/reconcile"
	"translation-manager/feature/locales"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags shared by the maintenance commands
	primaryLocale string
	dryRun        bool
)

var alphabetizeCmd = &cobra.Command{
	Use:   "alphabetize",
	Short: "Rewrite every document with sorted keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap("")
		if err != nil {
			return err
		}
		a.logger.Info("Alphabetizing documents")
		report, err := a.service.Alphabetize(cmd.Context())
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), report, false)
	},
}

var copyNewKeysCmd = &cobra.Command{
	Use:   "copy-new-keys",
	Short: "Copy keys missing from each locale out of the primary locale",
	Long: `Copy every key of the primary locale that another locale lacks.

Existing translations are never overwritten, except where a key changed from a
text to a group (or back) in the primary locale.

Examples:
  # Preview the keys that would be added
  copy-new-keys --dry-run

  # Use French as the reference
  copy-new-keys --locale fr`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd, reconcile.OperationPropagate)
	},
}

var trimDeadKeysCmd = &cobra.Command{
	Use:   "trim-dead-keys",
	Short: "Remove keys the primary locale does not have",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd, reconcile.OperationPrune)
	},
}

var removeKeyCmd = &cobra.Command{
	Use:   "remove-key KEY",
	Short: "Remove a key and its children from every locale",
	Long: `Remove a dot separated key, e.g. menu.file.open, from every document
including the primary locale. Documents without the key are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap("")
		if err != nil {
			return err
		}
		a.logger.Info("Removing key", zap.String("key", args[0]), zap.Bool("dry_run", dryRun))
		report, err := a.service.RemoveKey(cmd.Context(), args[0], reconcile.Options{DryRun: dryRun})
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), report, dryRun)
	},
}

func runReconcile(cmd *cobra.Command, op reconcile.Operation) error {
	a, err := bootstrap(primaryLocale)
	if err != nil {
		return err
	}

	a.logger.Info("Reconciling documents",
		zap.String("operation", string(op)),
		zap.String("primary", a.service.Primary()),
		zap.Bool("dry_run", dryRun),
	)

	opts := reconcile.Options{DryRun: dryRun}
	var report locales.Report
	switch op {
	case reconcile.OperationPropagate:
		report, err = a.service.CopyNewKeys(cmd.Context(), opts)
	default:
		report, err = a.service.TrimDeadKeys(cmd.Context(), opts)
	}
	if err != nil {
		return err
	}
	return printReport(cmd.OutOrStdout(), report, dryRun)
}

func init() {
	for _, c := range []*cobra.Command{copyNewKeysCmd, trimDeadKeysCmd} {
		c.Flags().StringVar(&primaryLocale, "locale", "", "Reference locale (defaults to LOCALES_PRIMARY)")
	}
	for _, c := range []*cobra.Command{copyNewKeysCmd, trimDeadKeysCmd, removeKeyCmd} {
		c.Flags().BoolVar(&dryRun, "dry-run", false, "Report the changes without saving")
	}

	RootCmd.AddCommand(alphabetizeCmd, copyNewKeysCmd, trimDeadKeysCmd, removeKeyCmd)
}
