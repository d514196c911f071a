package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// syncCmd is the parent command of the reconciling syncs.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile guild rosters, character profiles, and known recipes",
}

var syncRosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Reconcile a guild roster",
	Long: `Reconcile the stored members of a guild with its current roster.
Members that left are detached from the guild; their characters are kept.

Example:
  wowsync sync roster --realm area-52 --guild "Rally Tools"`,
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		_, err := a.guild.SyncGuildRoster(ctx, realmFlag, guildFlag)
		return err
	}),
}

var syncCharactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Refresh the profile of every stored character",
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		_, err := a.guild.SyncCharacters(ctx)
		return err
	}),
}

var syncRecipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Reconcile the known recipes of every stored character",
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		_, err := a.guild.SyncCharacterRecipes(ctx)
		return err
	}),
}

func init() {
	syncRosterCmd.Flags().StringVar(&realmFlag, "realm", "", "Realm name or slug")
	syncRosterCmd.Flags().StringVar(&guildFlag, "guild", "", "Guild name or slug")
	_ = syncRosterCmd.MarkFlagRequired("realm")
	_ = syncRosterCmd.MarkFlagRequired("guild")

	syncCmd.AddCommand(syncRosterCmd, syncCharactersCmd, syncRecipesCmd)
	RootCmd.AddCommand(syncCmd)
}
