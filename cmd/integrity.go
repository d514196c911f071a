package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"wowsync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the snapshot archive",
	Long:  `Compares the database against the models and inspects the snapshot archive. Exits non-zero when a check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check that every table and column exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Check the snapshot archive bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, archiveCmd)
}

func runIntegrityChecks(ctx context.Context, schema, archive bool) error {
	cfg, l, db, err := loadBase()
	if err != nil {
		return err
	}
	defer l.Sync()

	svc, err := newIntegrity(cfg, db, l)
	if err != nil {
		return err
	}

	failed := false

	if schema {
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		tables := make([]string, 0, len(report.Tables))
		for name := range report.Tables {
			tables = append(tables, name)
		}
		sort.Strings(tables)
		for _, name := range tables {
			tbl := report.Tables[name]
			if tbl.Status == "ok" {
				continue
			}
			l.Warn("Schema mismatch",
				zap.String("table", name),
				zap.String("status", tbl.Status),
				zap.Strings("missing_columns", tbl.MissingColumns),
			)
		}
		if report.Matched {
			l.Info("Schema matches models", zap.Int("tables", len(report.Tables)))
		} else {
			failed = true
		}
	}

	if archive {
		report, err := svc.CheckArchive(ctx)
		switch {
		case errors.Is(err, integrity.ErrArchiveDisabled):
			l.Info("Archive check skipped, storage is disabled")
		case err != nil:
			l.Error("Archive check failed", zap.Error(err))
			failed = true
		default:
			fields := []zap.Field{
				zap.String("bucket", report.Bucket),
				zap.Int("snapshots", report.Snapshots),
			}
			if report.Latest != nil {
				fields = append(fields, zap.Time("latest", *report.Latest))
			}
			l.Info("Archive ok", fields...)
		}
	}

	if failed {
		return errors.New("integrity checks failed")
	}
	return nil
}
