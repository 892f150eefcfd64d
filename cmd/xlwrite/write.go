package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/javajack/xlwrite"
	"github.com/spf13/cobra"
)

var (
	writeOpen     bool
	writeStrict   bool
	writePoll     time.Duration
	writeTimeout  time.Duration
	writeS3Bucket string
	writeS3Prefix string
)

// Replaced in tests.
var (
	newEngine   = func() xlwrite.Engine { return xlwrite.PowerShell{} }
	newUploader = func(ctx context.Context, bucket, prefix string) (*S3Uploader, error) {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load AWS SDK config for S3: %w", err)
		}
		return NewS3Uploader(cfg, bucket, prefix), nil
	}
	openWorkbook = func(ctx context.Context, wb *xlwrite.Workbook) error { return wb.Open(ctx) }
)

var writeCmd = &cobra.Command{
	Use:   "write <workbook.yaml>",
	Short: "Write the workbook through Excel",
	Long: `Generate the automation script for a workbook description, run it with
Excel in the background, and wait for the result.

Validation issues are logged before writing. With --strict, validation
errors abort the write.

Exit codes:
  - 0: workbook written
  - 1: invalid description, validation errors with --strict, or Excel failed

Examples:
  xlwrite write report.yaml
  xlwrite write report.yaml -o C:/Users/me/Desktop/report.xlsx --open
  xlwrite write report.yaml --s3-bucket reports --s3-prefix daily`,
	Args: cobra.ExactArgs(1),
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().BoolVar(&writeOpen, "open", false, "Open the workbook after it is written")
	writeCmd.Flags().BoolVar(&writeStrict, "strict", false, "Abort when validation reports errors")
	writeCmd.Flags().DurationVar(&writePoll, "poll", 200*time.Millisecond, "Interval between completion checks")
	writeCmd.Flags().DurationVar(&writeTimeout, "timeout", 0, "Kill Excel after this long (0 = no limit)")
	writeCmd.Flags().StringVar(&writeS3Bucket, "s3-bucket", "", "S3 bucket to upload the written workbook to")
	writeCmd.Flags().StringVar(&writeS3Prefix, "s3-prefix", "xlwrite-output", "S3 key prefix for uploads")
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if writePoll <= 0 {
		return fmt.Errorf("--poll must be > 0")
	}

	wb, err := loadWorkbook(args[0], xlwrite.WithEngine(newEngine()))
	if err != nil {
		return err
	}

	issues := wb.Validate()
	for _, issue := range issues {
		if issue.Severity == xlwrite.SeverityError {
			slog.Error("Validation", "issue", issue.String())
		} else {
			slog.Warn("Validation", "issue", issue.String())
		}
	}
	if writeStrict && xlwrite.HasErrors(issues) {
		return fmt.Errorf("workbook has validation errors")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, writeTimeout)
		defer cancel()
	}

	res, err := writeAndPoll(ctx, wb, writePoll)
	if err != nil {
		return err
	}
	if !res.OK() {
		slog.Error("Write failed", "error", res.Err)
		return &ExitError{Code: 1}
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.OutputPath)

	if writeOpen {
		// The viewer outlives this command and its --timeout.
		if err := openWorkbook(context.WithoutCancel(ctx), wb); err != nil {
			return err
		}
	}

	if writeS3Bucket != "" {
		uploader, err := newUploader(ctx, writeS3Bucket, writeS3Prefix)
		if err != nil {
			return err
		}
		if _, err := uploader.UploadFile(ctx, res.OutputPath); err != nil {
			return err
		}
		slog.Info("Successfully uploaded to S3", "bucket", writeS3Bucket)
	}
	return nil
}

// writeAndPoll starts the write and polls until it completes, logging each
// new status message.
func writeAndPoll(ctx context.Context, wb *xlwrite.Workbook, interval time.Duration) (xlwrite.Result, error) {
	if err := wb.Write(ctx); err != nil {
		return xlwrite.Result{}, err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastStatus := ""
	for {
		if status := wb.Status(); status != lastStatus {
			slog.Debug("Status", "status", status)
			lastStatus = status
		}
		if res, ok := wb.Poll(); ok {
			return res, nil
		}
		<-ticker.C
	}
}
