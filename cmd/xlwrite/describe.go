package main

import (
	"fmt"

	"github.com/javajack/xlwrite"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <workbook.yaml>",
	Short: "Print the workbook tree and validation issues",
	Long: `Print the sheets, cells, widths, borders and filters of a workbook
description, followed by any validation issues.

Exit codes:
  - 0: no validation errors (warnings allowed)
  - 1: at least one validation error`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	wb, err := loadWorkbook(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, wb.Describe())

	issues := wb.Validate()
	if len(issues) == 0 {
		return nil
	}
	fmt.Fprintln(out, "Issues:")
	for _, issue := range issues {
		fmt.Fprintf(out, "  %s\n", issue)
	}
	if xlwrite.HasErrors(issues) {
		return &ExitError{Code: 1}
	}
	return nil
}
