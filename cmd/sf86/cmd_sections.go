package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caseworks/go-sf86/pkg/sections"
)

// sectionsCmd lists the questionnaire's sections
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the questionnaire sections and their ids",
	Long: `Lists every section in form order with the id accepted by the
wizard's --sections flag and by field paths.`,
	RunE: runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	q := sections.NewQuestionnaire()
	for _, s := range q.Sections() {
		fmt.Printf("%-10s %s\n", s.ID(), s.Title())
	}
	return nil
}
