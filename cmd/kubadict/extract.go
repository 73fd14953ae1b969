package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kubadict/internal/cli"
	"github.com/at-ishikawa/kubadict/internal/document"
)

func newExtractCommand() *cobra.Command {
	var source string
	var output string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the lexicon from the source document into a CSV table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if source == "" {
				source = cfg.Source.Path
			}
			if output == "" {
				output = cfg.Outputs.CSVFile
			}

			opts, err := extractionOptions(cfg)
			if err != nil {
				return err
			}
			if _, err := cli.RunExtract(cmd.Context(), os.Stdout, cli.ExtractOptions{
				Source:        source,
				RetryAttempts: cfg.Source.RetryAttempts,
				Extraction:    opts,
				CSVFile:       output,
			}); err != nil {
				return fmt.Errorf("cli.RunExtract() > %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source document: a .docx, .html or text file, or an http(s) URL")
	cmd.Flags().StringVar(&output, "output", "", "CSV file to write")
	return cmd
}

func newInspectCommand() *cobra.Command {
	var source string
	var contextSize int
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show where extraction starts in the source document and its first entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if source == "" {
				source = cfg.Source.Path
			}

			paragraphs, err := document.Read(cmd.Context(), source, document.Options{RetryAttempts: cfg.Source.RetryAttempts})
			if err != nil {
				return fmt.Errorf("document.Read() > %w", err)
			}
			return cli.RunInspect(os.Stdout, paragraphs, cli.InspectOptions{
				Rules:   cfg.Extraction.Rules(),
				Context: contextSize,
				Limit:   limit,
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source document: a .docx, .html or text file, or an http(s) URL")
	cmd.Flags().IntVar(&contextSize, "context", cli.DefaultInspectContext, "Number of paragraphs shown before the first entry")
	cmd.Flags().IntVar(&limit, "limit", cli.DefaultInspectLimit, "Number of entries shown")
	return cmd
}
