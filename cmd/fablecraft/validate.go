package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fablecraft/internal/config"
	"fablecraft/internal/lint"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <story.yaml>",
		Short: "Check a story file for problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
	return cmd
}

func runValidate(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	report := lint.Run(cfg)
	errorIssues := report.Errors()
	warnIssues := report.Warnings()

	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errorIssues))
		printIssues(os.Stdout, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "Warnings (%d):\n", len(warnIssues))
		printIssues(os.Stdout, warnIssues)
	}

	if len(errorIssues) > 0 {
		return fmt.Errorf("validation found errors")
	}
	return nil
}

func printIssues(out *os.File, issues []lint.Issue) {
	for _, issue := range issues {
		fmt.Fprintf(out, "  - %s: %s (%s)\n", issue.Character, issue.Message, issue.Code)
	}
}
