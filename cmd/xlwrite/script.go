package main

import (
	"fmt"

	"github.com/javajack/xlwrite"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script <workbook.yaml>",
	Short: "Print the generated automation script",
	Long: `Print the PowerShell script that "write" would run, as UTF-8.
Nothing is written to disk and Excel is not started.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	wb, err := loadWorkbook(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), xlwrite.RenderScript(wb.Commands()))
	return err
}
