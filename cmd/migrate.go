package cmd

import (
	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the database schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, l, db, err := loadBase()
		if err != nil {
			return err
		}
		defer l.Sync()

		if err := migrate(cmd.Context(), db); err != nil {
			return err
		}
		l.Info("Schema migrated")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
