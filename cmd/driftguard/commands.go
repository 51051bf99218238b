package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"

	"github.com/driftguard/driftguard/internal/config"
	"github.com/driftguard/driftguard/internal/version"
	"github.com/driftguard/driftguard/pkg/driftguard"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "driftguard",
		Short: "Security group drift detection and auto-remediation",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var eventPath string

	cmd := &cobra.Command{
		Use:           "run",
		Short:         "Process one change-audit event and revert unauthorized rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), eventPath, cmd.OutOrStdout(), cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&eventPath, "event", "-", `Path to the audit event JSON ("-" for stdin)`)
	return cmd
}

func runOnce(ctx context.Context, eventPath string, out io.Writer, stdin io.Reader) error {
	log := newLogger()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	payload, err := readEvent(eventPath, stdin)
	if err != nil {
		return err
	}

	awsCfg, err := loadAWSConfig(ctx, cfg.Region)
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = awsCfg.Region
	}

	handler := driftguard.New(awsCfg, cfg, log)
	result, runErr := handler.Handle(ctx, payload)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode run result: %w", err)
	}
	return runErr
}

func readEvent(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		payload, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read event from stdin: %w", err)
		}
		return payload, nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event file: %w", err)
	}
	return payload, nil
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if region != "" {
		return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	}
	return awsconfig.LoadDefaultConfig(ctx)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "driftguard %s (%s)\n", version.Version, version.GitCommit)
		},
	}
}
