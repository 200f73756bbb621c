package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caseworks/go-sf86/pkg/answers"
	"github.com/caseworks/go-sf86/pkg/inventory"
	"github.com/caseworks/go-sf86/pkg/pipeline"
)

var inventoryFile string

// inventoryCmd groups PDF field inventory operations
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "PDF field inventory operations",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalogued PDF fields",
	RunE:  runInventoryList,
}

var inventoryCheckCmd = &cobra.Command{
	Use:   "check [draft]",
	Short: "Cross-check a draft's field mapping against the inventory",
	Long: `Maps the draft and verifies every populated field against the PDF's
field catalogue: the field must exist, text must fit its length limit, and
choice values must be legal export values. Also reports coverage, the share
of catalogued fields the draft populates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInventoryCheck,
}

func init() {
	inventoryCmd.PersistentFlags().StringVar(&inventoryFile, "inventory", "sf86-fields.json", "PDF field inventory JSON")
	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryCheckCmd)
}

func runInventoryList(cmd *cobra.Command, args []string) error {
	inv, err := inventory.LoadFile(inventoryFile)
	if err != nil {
		return err
	}
	for _, f := range inv.Fields() {
		fmt.Println(f)
	}
	fmt.Printf("%d fields on %d pages\n", inv.Len(), len(inv.Pages()))
	return nil
}

func runInventoryCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := draftPath
	if len(args) == 1 {
		path = args[0]
	}

	inv, err := inventory.LoadFile(inventoryFile)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.WithInventory(inv))
	result, err := p.Validate(ctx, pipeline.Request{Source: answers.SourceFromFile(path)})
	if err != nil {
		return err
	}
	report := result.Inventory

	for _, f := range report.Unknown {
		fmt.Printf("unknown   %s\n", f)
	}
	for _, f := range report.Mismatched {
		fmt.Printf("mismatch  %s\n", f)
	}

	logger.Debug("inventory check finished",
		zap.Int("mapped", report.Mapped),
		zap.Int("unknown", len(report.Unknown)),
		zap.Int("mismatched", len(report.Mismatched)))

	fmt.Printf("%d of %d catalogued fields populated (%.0f%% coverage)\n",
		report.Mapped, report.Total, report.Coverage()*100)
	if !report.Clean() {
		return fmt.Errorf("mapping does not match the PDF field inventory (%d unknown, %d mismatched)",
			len(report.Unknown), len(report.Mismatched))
	}
	return nil
}
