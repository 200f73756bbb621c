package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caseworks/go-sf86/pkg/answers"
	"github.com/caseworks/go-sf86/pkg/pipeline"
)

// validateCmd checks a draft against the form's rules
var validateCmd = &cobra.Command{
	Use:   "validate [draft]",
	Short: "Check a draft against the form's validation rules",
	Long: `Loads a draft, applies every section's validation rules, and lists
each problem with the field path it concerns. Exits non-zero when the draft
is not ready to be filled.

Example:
  sf86 validate mine.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := draftPath
	if len(args) == 1 {
		path = args[0]
	}

	p := pipeline.New()
	result, err := p.Validate(ctx, pipeline.Request{Source: answers.SourceFromFile(path)})
	if err != nil {
		return err
	}

	problems := 0
	for _, issue := range result.Shape {
		fmt.Printf("shape    %s: %s\n", issue.Path, issue.Message)
		problems++
	}
	for _, issue := range result.Unresolved {
		fmt.Printf("unknown  %s: %s\n", issue.Path, issue.Message)
		problems++
	}
	for _, issue := range result.Validation.Issues {
		fmt.Printf("invalid  %s: %s\n", issue.Path, issue.Message)
		problems++
	}

	logger.Debug("validation finished",
		zap.String("draft", path),
		zap.Int("problems", problems),
		zap.Int("mapped_fields", result.Table.Len()))

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Printf("Draft is valid; %d PDF fields would be filled\n", result.Table.Len())
	return nil
}
