package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/kubadict/internal/cli"
	"github.com/at-ishikawa/kubadict/internal/database"
	"github.com/at-ishikawa/kubadict/internal/datasync"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

type ExportFormatFlag cli.ExportFormat

// Set implements pflag.Value.
func (f *ExportFormatFlag) Set(v string) error {
	switch cli.ExportFormat(v) {
	case cli.ExportFormatYAML, cli.ExportFormatPDF:
		*f = ExportFormatFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, cli.ExportFormatYAML, cli.ExportFormatPDF)
	}
	return nil
}

// String implements pflag.Value.
func (f *ExportFormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *ExportFormatFlag) Type() string {
	return "ExportFormat"
}

var (
	_ pflag.Value = (*ExportFormatFlag)(nil)
)

func newExportCommand() *cobra.Command {
	format := ExportFormatFlag(cli.ExportFormatYAML)
	var input string
	var fromDB bool

	cmd := &cobra.Command{
		Use:       "export [yaml|pdf]",
		Short:     "Export the lexicon as YAML or as a PDF document",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(cli.ExportFormatYAML), string(cli.ExportFormatPDF)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := format.Set(args[0]); err != nil {
					return err
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var records []lexicon.Record
			if fromDB {
				db, err := database.Open(cfg.Database)
				if err != nil {
					return fmt.Errorf("database.Open() > %w", err)
				}
				defer func() {
					_ = db.Close()
				}()

				records, err = datasync.NewExporter(lexicon.NewDBRepository(db)).Export(cmd.Context())
				if err != nil {
					return fmt.Errorf("exporter.Export() > %w", err)
				}
			} else {
				records, err = readRecords(cfg, input)
				if err != nil {
					return err
				}
			}

			if _, err := cli.RunExport(os.Stdout, records, cli.ExportOptions{
				Format:        cli.ExportFormat(format),
				YAMLDirectory: cfg.Outputs.YAMLDirectory,
				MarkdownFile:  cfg.Outputs.MarkdownFile,
				PDFFont:       cfg.Outputs.PDFFont,
			}); err != nil {
				return fmt.Errorf("cli.RunExport() > %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "Export format. Options: yaml, pdf")
	cmd.Flags().StringVar(&input, "input", "", "CSV file to export")
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "Export the records stored in the database instead of the CSV file")
	return cmd
}
