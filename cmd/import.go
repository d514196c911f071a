package cmd

import (
	"context"

	"wowsync/core/result"

	"github.com/spf13/cobra"
)

var (
	realmFlag string
	guildFlag string
)

// importCmd is the parent command of the one-shot imports.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import catalog, market, or guild data from the API",
}

var importRacesClassesCmd = &cobra.Command{
	Use:   "races-classes",
	Short: "Import playable races, classes, and specializations",
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		return importRacesAndClasses(ctx, a)
	}),
}

var importProfessionsCmd = &cobra.Command{
	Use:   "professions",
	Short: "Import professions and their skill tiers",
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		return importProfessions(ctx, a)
	}),
}

var importRecipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Import the recipes and reagents of every stored skill tier",
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		_, err := a.gamedata.ImportRecipesAndReagents(ctx)
		return err
	}),
}

var importCommoditiesCmd = &cobra.Command{
	Use:   "commodities",
	Short: "Import the current commodity auction snapshot",
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		_, err := a.auctionhouse.ImportCommodities(ctx)
		return err
	}),
}

var importGuildCmd = &cobra.Command{
	Use:   "guild",
	Short: "Import a guild",
	Long: `Import a guild record. Run this once before syncing its roster.

Example:
  wowsync import guild --realm area-52 --guild "Rally Tools"`,
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		_, err := a.guild.ImportGuild(ctx, realmFlag, guildFlag)
		return err
	}),
}

func init() {
	importGuildCmd.Flags().StringVar(&realmFlag, "realm", "", "Realm name or slug")
	importGuildCmd.Flags().StringVar(&guildFlag, "guild", "", "Guild name or slug")
	_ = importGuildCmd.MarkFlagRequired("realm")
	_ = importGuildCmd.MarkFlagRequired("guild")

	importCmd.AddCommand(
		importRacesClassesCmd,
		importProfessionsCmd,
		importRecipesCmd,
		importCommoditiesCmd,
		importGuildCmd,
	)
	RootCmd.AddCommand(importCmd)
}

// runWithApp wires the application and runs fn with the command context.
func runWithApp(fn func(ctx context.Context, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.logger.Sync()
		return fn(ctx, a)
	}
}

// steps runs sync steps in order and stops at the first failure.
func steps(ctx context.Context, fns ...func(context.Context) (result.Summary, error)) error {
	for _, fn := range fns {
		if _, err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func importRacesAndClasses(ctx context.Context, a *app) error {
	return steps(ctx,
		a.gamedata.ImportPlayableRaces,
		a.gamedata.ImportPlayableClasses,
		a.gamedata.ImportPlayableSpecializations,
	)
}

func importProfessions(ctx context.Context, a *app) error {
	return steps(ctx,
		a.gamedata.ImportProfessions,
		a.gamedata.ImportProfessionSkillTiers,
	)
}
