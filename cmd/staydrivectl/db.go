package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"staydrive/internal/cache"
	"staydrive/internal/database"
	"staydrive/internal/modules/catalog"
	"staydrive/internal/repository"
)

const defaultDSN = "staydrive.db"

func dsnFlag(cmd *cobra.Command) *string {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = defaultDSN
	}
	return cmd.Flags().String("dsn", dsn, "database DSN (postgres:// URL or sqlite file)")
}

func openMigrated(dsn string) (*gorm.DB, error) {
	db, err := database.Connect(dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", dsn, err)
	}
	if err := repository.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the relational schema",
	}
	dsn := dsnFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if _, err := openMigrated(*dsn); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	}
	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo guest houses and cars into empty tables",
	}
	dsn := dsnFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		db, err := openMigrated(*dsn)
		if err != nil {
			return err
		}
		inv, done, err := listingInvalidator(cmd.Context())
		if err != nil {
			return err
		}
		defer done()
		return runSeed(cmd.Context(), db, inv, cmd.OutOrStdout())
	}
	return cmd
}

// runSeed fills the catalog and drops the cached catalog listings when rows
// were added.
func runSeed(ctx context.Context, db *gorm.DB, inv cache.Invalidator, out io.Writer) error {
	added, err := repository.Seed(ctx, db)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	fmt.Fprintf(out, "seeded %d catalog items\n", added)
	if added == 0 {
		return nil
	}
	return invalidatePaths(ctx, inv, out, catalog.ListingPaths...)
}
