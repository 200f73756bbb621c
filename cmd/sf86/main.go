package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose   bool
	draftPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sf86",
	Short: "sf86 - background investigation questionnaire data entry",
	Long: `sf86 collects, validates, and maps answers for the SF-86 background
investigation questionnaire.

Answers live in a JSON or YAML draft file. The wizard walks through the
form's sections interactively; validate checks a draft against the form's
rules; fill maps a clean draft onto the PDF's field identifiers and emits
a fill table (JSON, FDF, or XFDF) for a PDF form filler.`,
	// main prints the error; run funcs return instead of exiting so deferred
	// cleanup and the logger sync still happen.
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&draftPath, "draft", "d", "sf86-draft.json", "Path to the answers draft file")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(inventoryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
