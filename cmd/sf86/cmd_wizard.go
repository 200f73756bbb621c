package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caseworks/go-sf86/pkg/answers"
	"github.com/caseworks/go-sf86/pkg/sections"
	"github.com/caseworks/go-sf86/pkg/wizard"
)

var wizardSections []string

// wizardCmd walks through the questionnaire interactively
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Answer the questionnaire interactively",
	Long: `Starts a terminal session that walks through the form section by
section and saves the answers to the draft file.

An existing draft is loaded first, so a session can resume where a previous
one left off. Aborting with Ctrl+C still saves the answers recorded so far.

Example:
  sf86 wizard --draft mine.json --sections identity,section11`,
	RunE: runWizard,
}

func init() {
	wizardCmd.Flags().StringSliceVar(&wizardSections, "sections", nil, "Only walk the named sections (comma separated ids)")
}

func runWizard(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	q, err := loadDraft(ctx)
	if err != nil {
		return err
	}

	w := wizard.New(wizard.WithSections(wizardSections...))
	runErr := w.Run(ctx, q)
	if runErr != nil && !errors.Is(runErr, wizard.ErrAborted) {
		return runErr
	}
	if errors.Is(runErr, wizard.ErrAborted) {
		fmt.Fprintln(os.Stderr, "session aborted; saving answers recorded so far")
	}

	if err := saveDraft(q); err != nil {
		return err
	}
	logger.Info("draft saved",
		zap.String("path", draftPath),
		zap.Int("revision", q.Metadata.Revision))
	fmt.Printf("Draft saved to %s\n", draftPath)
	return runErr
}

// loadDraft reads the draft file when it exists and otherwise starts a fresh
// questionnaire.
func loadDraft(ctx context.Context) (*sections.Questionnaire, error) {
	q := sections.NewQuestionnaire()
	if _, err := os.Stat(draftPath); errors.Is(err, os.ErrNotExist) {
		return q, nil
	}

	var loader answers.Loader
	doc, err := loader.Load(ctx, answers.SourceFromFile(draftPath))
	if err != nil {
		return nil, err
	}
	decoded, err := answers.Decode(doc)
	if err != nil {
		return nil, err
	}
	unresolved, err := answers.Apply(q, decoded)
	if err != nil {
		return nil, err
	}
	for _, issue := range unresolved {
		logger.Warn("ignoring unknown answer", zap.String("path", issue.Path))
	}
	return q, nil
}

func saveDraft(q *sections.Questionnaire) error {
	var (
		raw []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(draftPath)) {
	case ".yaml", ".yml":
		raw, err = answers.EncodeYAML(q)
	default:
		raw, err = answers.EncodeJSON(q)
	}
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return os.WriteFile(draftPath, raw, 0o644)
}
