package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

type runFunc func(ctx context.Context, companyDomain string) (domain.Report, error)

func newRootCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:           "leadscanner [domain]",
		Short:         "Score a company domain as an outreach lead",
		Long:          "leadscanner scans a company website and optional news for cloud, hiring and funding signals, scores the lead and drafts a CTO pitch when it qualifies.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) == 1 {
				target = strings.TrimSpace(args[0])
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "DataVex Enterprise Intelligence Engine")
				fmt.Fprintln(cmd.ErrOrStderr(), strings.Repeat("=", 60))
				line, err := prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "Enter company domain: ")
				if err != nil {
					return err
				}
				target = line
			}
			if target == "" {
				return errors.New("no domain given")
			}

			report, err := run(cmd.Context(), target)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(report); encErr != nil {
				return fmt.Errorf("encode report: %w", encErr)
			}
			return err
		},
	}
}

func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read domain: %w", err)
	}
	return strings.TrimSpace(line), nil
}
