// Command migrate applies and inspects the embedded database schema.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/staffbook/staffbook-backend-go/internal/config"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the staffbook database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string (defaults to DB_* environment)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), dsn, func(ctx context.Context, db *database.DB) error {
				applied, err := db.Migrate(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and when they were applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), dsn, func(ctx context.Context, db *database.DB) error {
				status, err := db.MigrationStatus(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED AT")
				for _, m := range status {
					appliedAt := "pending"
					if m.AppliedAt != nil {
						appliedAt = m.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", m.Version, m.Name, appliedAt)
				}
				return w.Flush()
			})
		},
	})

	return cmd
}

func withDB(parent context.Context, dsn string, fn func(ctx context.Context, db *database.DB) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if dsn == "" {
		dbCfg, err := config.LoadDatabase()
		if err != nil {
			return err
		}
		dsn = dbCfg.URL()
	}

	db, err := database.NewPostgreSQLDB(dsn, database.Options{MaxConns: 2, MinConns: 1})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	return fn(ctx, db)
}
