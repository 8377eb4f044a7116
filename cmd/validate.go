package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/certlab/examgrade/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Check a question catalog for consistency problems",
	Long: `Check a question catalog against the schema and report the
data-consistency findings the scoring engine would otherwise warn about
at grading time: questions with no correct option, and correct-option
counts drifting from required_selections.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	c, err := catalog.LoadCatalog(args[0])
	if err != nil {
		return err
	}

	findings := catalog.Lint(c.Questions)
	if len(findings) == 0 {
		fmt.Printf("%s: %d questions, no findings\n", args[0], len(c.Questions))
		return nil
	}

	for _, f := range findings {
		fmt.Fprintln(os.Stderr, f)
	}
	return fmt.Errorf("%d finding(s) in %d questions", len(findings), len(c.Questions))
}
