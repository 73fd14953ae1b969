package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kubadict/internal/database"
	"github.com/at-ishikawa/kubadict/internal/datasync"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

func newMigrateImportDBCommand() *cobra.Command {
	var input string
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import the lexicon table into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			records, err := readRecords(cfg, input)
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()
			if err := database.Migrate(ctx, db); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}

			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}
			var result *datasync.ImportResult
			if err := database.RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
				importer := datasync.NewImporter(lexicon.NewDBRepository(tx), os.Stdout)
				var err error
				result, err = importer.ImportRecords(ctx, records, opts)
				return err
			}); err != nil {
				return fmt.Errorf("importer.ImportRecords() > %w", err)
			}

			fmt.Println("\nImport Summary:")
			if opts.DryRun {
				fmt.Println("  (dry-run mode, no changes made)")
			}
			fmt.Printf("  Lexicon entries: %d new, %d skipped, %d updated\n", result.New, result.Skipped, result.Updated)

			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "CSV file to import")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Update existing records with new data")
	return cmd
}
