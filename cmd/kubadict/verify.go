package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kubadict/internal/cli"
	"github.com/at-ishikawa/kubadict/internal/verification"
)

func newVerifyCommand() *cobra.Command {
	var input string
	var inspect []string
	var top int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the senses of every lemma in the CSV table are numbered 1..n",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if input == "" {
				input = cfg.Outputs.CSVFile
			}

			report, err := cli.RunVerify(os.Stdout, input, verification.Options{
				TopN:    top,
				Inspect: inspect,
			})
			if err != nil {
				return fmt.Errorf("cli.RunVerify() > %w", err)
			}
			if !report.Valid() {
				return fmt.Errorf("verification failed for %d lemma(s)", len(report.Violations))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "CSV file to verify")
	cmd.Flags().StringArrayVar(&inspect, "inspect", []string{"саба", "аккват/би"}, "Lemma whose entries are printed in full")
	cmd.Flags().IntVar(&top, "top", verification.DefaultTopN, "Number of lemmas with the most meanings to print")
	return cmd
}
