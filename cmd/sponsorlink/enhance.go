package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helixml/sponsorlink/application/service"
	"github.com/helixml/sponsorlink/domain/enhancement"
	"github.com/helixml/sponsorlink/infrastructure/provider"
	"github.com/helixml/sponsorlink/internal/log"
)

func enhanceCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "enhance [description...]",
		Short: "Enhance one event description and print the result",
		Long: `Enhance one event description using the configured provider and print
the rewritten text to stdout.

The description is taken from the arguments, joined by spaces. When no
arguments are given it is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runEnhance(ctx, envFile, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runEnhance(ctx context.Context, envFile string, args []string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout carries only the result.
	logger := log.NewLoggerWithWriter(errOut, cfg.LogFormat(), cfg.LogLevel()).Slog()

	description, err := readDescription(args, in)
	if err != nil {
		return err
	}

	enhancer := service.NewEnhancer(provider.FromConfig(cfg, logger), logger)
	text, err := enhancer.Enhance(ctx, enhancement.NewRequest(description))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, text)
	return err
}

func readDescription(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read description: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
