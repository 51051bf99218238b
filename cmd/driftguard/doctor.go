package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	internalaws "github.com/driftguard/driftguard/internal/aws"
	"github.com/driftguard/driftguard/internal/config"
	"github.com/driftguard/driftguard/internal/notify"
)

// DoctorResult is the structured output of driftguard doctor. It can be
// serialised to JSON via --format=json or rendered as text (default).
type DoctorResult struct {
	Config struct {
		OK    bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	} `json:"config"`

	Credentials struct {
		OK        bool   `json:"ok"`
		AccountID string `json:"account_id,omitempty"`
		ARN       string `json:"arn,omitempty"`
		Error     string `json:"error,omitempty"`
	} `json:"credentials"`

	SecurityGroup struct {
		OK      bool   `json:"ok"`
		Ingress int    `json:"ingress_rules"`
		Egress  int    `json:"egress_rules"`
		Error   string `json:"error,omitempty"`
	} `json:"security_group"`

	Baseline struct {
		OK      bool   `json:"ok"`
		Version string `json:"version,omitempty"`
		Error   string `json:"error,omitempty"`
	} `json:"baseline"`

	Webhook struct {
		Configured bool   `json:"configured"`
		Error      string `json:"error,omitempty"`
	} `json:"webhook"`

	OverallHealthy bool `json:"overall_healthy"`
}

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "doctor",
		Short:         "Run environment diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			result, err := runDoctor(cmd.Context(), cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
			if !result.OverallHealthy {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "text", `Output format: "text" or "json"`)
	return cmd
}

func runDoctor(ctx context.Context, w io.Writer, format string) (DoctorResult, error) {
	result := collectDoctorResult(ctx)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return result, fmt.Errorf("encode doctor result: %w", err)
		}
	default:
		renderDoctorText(result, w)
	}

	return result, nil
}

func collectDoctorResult(ctx context.Context) DoctorResult {
	var result DoctorResult

	cfg, err := config.FromEnv()
	if err != nil {
		result.Config.Error = err.Error()
		return result
	}
	result.Config.OK = true

	awsCfg, err := loadAWSConfig(ctx, cfg.Region)
	if err != nil {
		result.Credentials.Error = err.Error()
		return result
	}
	client := internalaws.NewClient(awsCfg)

	identity, err := client.GetCallerIdentity(ctx)
	if err != nil {
		result.Credentials.Error = err.Error()
		return result
	}
	result.Credentials.OK = true
	result.Credentials.AccountID = identity.AccountID
	result.Credentials.ARN = identity.ARN

	// The remaining probes are independent; run them concurrently. This is
	// the only concurrency in the binary; a detection run stays strictly
	// sequential.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rules, err := client.GetSecurityGroupRules(gctx, cfg.SecurityGroupID)
		if err != nil {
			result.SecurityGroup.Error = err.Error()
			return nil
		}
		result.SecurityGroup.OK = true
		result.SecurityGroup.Ingress = len(rules.Ingress)
		result.SecurityGroup.Egress = len(rules.Egress)
		return nil
	})

	g.Go(func() error {
		baseline, err := client.GetBaseline(gctx, cfg.BaselineBucket, cfg.BaselineKey)
		if err != nil {
			result.Baseline.Error = err.Error()
			return nil
		}
		result.Baseline.OK = true
		result.Baseline.Version = baseline.BaselineVersion
		return nil
	})

	g.Go(func() error {
		value, err := client.GetParameter(gctx, cfg.WebhookParameterName)
		if err != nil {
			result.Webhook.Error = err.Error()
			return nil
		}
		result.Webhook.Configured = value != "" && value != notify.PlaceholderWebhookURL
		return nil
	})

	g.Wait()

	// Webhook being unconfigured is a degraded-but-valid state: chat
	// notifications are skipped, nothing else is affected.
	result.OverallHealthy = result.Config.OK &&
		result.Credentials.OK &&
		result.SecurityGroup.OK &&
		result.Baseline.OK &&
		result.Webhook.Error == ""

	return result
}

func renderDoctorText(result DoctorResult, w io.Writer) {
	status := func(ok bool, errMsg string) string {
		if ok {
			return "OK"
		}
		if errMsg == "" {
			return "SKIPPED"
		}
		return "FAIL: " + errMsg
	}

	fmt.Fprintf(w, "Config:         %s\n", status(result.Config.OK, result.Config.Error))
	fmt.Fprintf(w, "Credentials:    %s", status(result.Credentials.OK, result.Credentials.Error))
	if result.Credentials.OK {
		fmt.Fprintf(w, " (%s)", result.Credentials.ARN)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Security group: %s", status(result.SecurityGroup.OK, result.SecurityGroup.Error))
	if result.SecurityGroup.OK {
		fmt.Fprintf(w, " (%d ingress, %d egress rules)", result.SecurityGroup.Ingress, result.SecurityGroup.Egress)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Baseline:       %s", status(result.Baseline.OK, result.Baseline.Error))
	if result.Baseline.OK {
		fmt.Fprintf(w, " (version %s)", result.Baseline.Version)
	}
	fmt.Fprintln(w)
	if result.Webhook.Error != "" {
		fmt.Fprintf(w, "Webhook:        FAIL: %s\n", result.Webhook.Error)
	} else if result.Webhook.Configured {
		fmt.Fprintln(w, "Webhook:        configured")
	} else {
		fmt.Fprintln(w, "Webhook:        not configured (chat notifications disabled)")
	}

	if result.OverallHealthy {
		fmt.Fprintln(w, "\nEnvironment healthy.")
	} else {
		fmt.Fprintln(w, "\nEnvironment unhealthy.")
	}
}
