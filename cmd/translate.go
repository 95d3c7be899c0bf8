package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"translation-manager/core/locale"
	"translation-manager/core/review"
	"translation-manager/feature/locales"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Flags for translate command
	sourceLocale string
	recreate     bool
)

// errNotInteractive is returned when translate is run without a terminal on stdin.
var errNotInteractive = errors.New("translate needs an interactive terminal on stdin")

var translateCmd = &cobra.Command{
	Use:   "translate LOCALE",
	Short: "Interactively translate the keys a locale is missing",
	Long: `Walk through every key of the source locale that LOCALE does not have yet and
ask for a translation. Missing keys are copied from the source first, so an
empty answer keeps the source text.

Press Ctrl+C to abort; nothing is saved unless every key was reviewed.

Examples:
  # Translate the missing Japanese keys
  translate ja

  # Review every key again, using French as the source
  translate ja --source fr --recreate`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVar(&sourceLocale, "source", "", "Locale to translate from (defaults to LOCALES_PRIMARY)")
	translateCmd.Flags().BoolVar(&recreate, "recreate", false, "Review every key, not only the missing ones")

	RootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	dest := args[0]
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errNotInteractive
	}
	if _, err := locale.Parse(dest); err != nil {
		return err
	}

	a, err := bootstrap("")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Selected language: %s\n", locale.Describe(dest))
	if recreate {
		fmt.Fprintln(out, "Recreate mode: every key will be reviewed, existing translations included.")
	}

	var term *review.Terminal
	prompter := func(source, dest string) review.Prompter {
		term = review.NewTerminal(cmd.InOrStdin(), out, source, dest)
		term.Intro()
		return term
	}

	res, err := a.service.Translate(ctx, dest, locales.TranslateOptions{
		Source: sourceLocale,
		Force:  recreate,
	}, prompter)
	if term != nil {
		defer term.Close()
	}
	if errors.Is(err, review.ErrCancelled) {
		fmt.Fprintln(out, "Abort.")
		return nil
	}
	if err != nil {
		return err
	}

	if res.Pending == 0 {
		fmt.Fprintln(out, "All keys are set, nothing to translate.")
		return nil
	}
	term.Summary(res.Review)
	fmt.Fprintln(out, "Done!")
	return nil
}
