package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caseworks/go-sf86/pkg/answers"
	"github.com/caseworks/go-sf86/pkg/inventory"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/pipeline"
)

var (
	fillFormat    string
	fillOutput    string
	fillInventory string
)

// fillCmd maps a clean draft onto PDF field identifiers
var fillCmd = &cobra.Command{
	Use:   "fill [draft]",
	Short: "Map a valid draft onto PDF fields and emit a fill table",
	Long: `Runs the full pipeline on a draft: decode, sanitise, validate, map
to PDF field identifiers, and emit the fill table. Emission formats:

  json  canonical id-to-value object (default)
  fdf   Adobe FDF, importable by Acrobat and pdftk
  xfdf  XML FDF

With --inventory, the mapping is cross-checked against the PDF's field
catalogue before anything is written.

Example:
  sf86 fill mine.json --format fdf --output mine.fdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVarP(&fillFormat, "format", "f", "json", "Output format: json, fdf, or xfdf")
	fillCmd.Flags().StringVarP(&fillOutput, "output", "o", "", "Output file (default: stdout)")
	fillCmd.Flags().StringVar(&fillInventory, "inventory", "", "PDF field inventory JSON to cross-check against")
}

func runFill(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := draftPath
	if len(args) == 1 {
		path = args[0]
	}

	format, err := pdfmap.ParseFormat(fillFormat)
	if err != nil {
		return err
	}

	options := []pipeline.Option{pipeline.WithOutputFormat(format)}
	if fillInventory != "" {
		inv, err := inventory.LoadFile(fillInventory)
		if err != nil {
			return err
		}
		options = append(options, pipeline.WithInventory(inv))
	}

	p := pipeline.New(options...)
	result, err := p.Fill(ctx, pipeline.Request{Source: answers.SourceFromFile(path)})
	if err != nil {
		return err
	}

	if !result.Ready() {
		for _, issue := range result.Shape {
			fmt.Fprintf(os.Stderr, "shape    %s: %s\n", issue.Path, issue.Message)
		}
		for _, issue := range result.Unresolved {
			fmt.Fprintf(os.Stderr, "unknown  %s: %s\n", issue.Path, issue.Message)
		}
		for _, issue := range result.Validation.Issues {
			fmt.Fprintf(os.Stderr, "invalid  %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("draft is not ready to fill; run `sf86 validate %s`", path)
	}

	if result.Inventory != nil && !result.Inventory.Clean() {
		for _, f := range result.Inventory.Unknown {
			fmt.Fprintf(os.Stderr, "inventory %s\n", f)
		}
		for _, f := range result.Inventory.Mismatched {
			fmt.Fprintf(os.Stderr, "inventory %s\n", f)
		}
		return fmt.Errorf("mapping does not match the PDF field inventory")
	}

	logger.Debug("fill table emitted",
		zap.String("draft", path),
		zap.String("format", string(format)),
		zap.Int("fields", result.Table.Len()))

	if fillOutput == "" {
		_, err = os.Stdout.Write(result.Output)
		return err
	}
	if err := os.WriteFile(fillOutput, result.Output, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %d fields to %s\n", result.Table.Len(), fillOutput)
	return nil
}
