package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/javajack/xlwrite"
	"github.com/javajack/xlwrite/config"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	logLevel   string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "xlwrite",
	Short: "Write Excel workbooks from YAML descriptions",
	Long: `Write Excel workbooks by generating a PowerShell automation script and
running it against a local Excel installation.

Commands:
  write    Generate the script, run Excel, and report the result.
  script   Print the generated script without running it.
  describe Print the workbook tree and validation issues.`,
	Version:       Version,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Workbook output path (overrides the description file)")
}

func Execute() error {
	return rootCmd.Execute()
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}

// loadWorkbook reads a description file and applies --output.
func loadWorkbook(path string, opts ...xlwrite.Option) (*xlwrite.Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	cfg, err := config.LoadWorkbookConfig(path)
	if err != nil {
		return nil, err
	}
	opts = append([]xlwrite.Option{xlwrite.WithLogger(slog.Default())}, opts...)
	wb, err := config.Build(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}
	if outputPath != "" {
		wb.SetPath(outputPath)
	}
	return wb, nil
}
