package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wowsync/core/scheduler"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scheduleCmd runs the sync jobs on their cron specs until interrupted.
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the sync jobs on their cron schedule",
	Long: `Runs every enabled sync job on its cron spec (SCHEDULE_* settings) until
interrupted. A job whose previous run has not finished is skipped.`,
	RunE: runWithApp(func(ctx context.Context, a *app) error {
		s, err := newScheduler(a)
		if err != nil {
			return err
		}
		a.logger.Info("Scheduler started", zap.Strings("jobs", s.Jobs()))
		s.Start(ctx, a.cfg.Schedule.RunOnStart)
		return nil
	}),
}

func init() {
	RootCmd.AddCommand(scheduleCmd)
}

// parseGuilds splits realm/name pairs.
func parseGuilds(entries []string) ([][2]string, error) {
	var guilds [][2]string
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		realm, name, ok := strings.Cut(entry, "/")
		if !ok || realm == "" || name == "" {
			return nil, fmt.Errorf("invalid guild %q, expected realm/name", entry)
		}
		guilds = append(guilds, [2]string{realm, name})
	}
	return guilds, nil
}

func newScheduler(a *app) (*scheduler.Scheduler, error) {
	cfg := a.cfg.Schedule
	guilds, err := parseGuilds(cfg.Guilds)
	if err != nil {
		return nil, err
	}

	s, err := scheduler.New(cfg, a.logger.Named("scheduler"))
	if err != nil {
		return nil, err
	}

	// Registration order is the startup order: the catalog first, since the
	// other jobs resolve classes, races and recipes against it
	jobs := []struct {
		name string
		spec string
		fn   scheduler.Func
	}{
		{"catalog", cfg.Catalog, func(ctx context.Context) error {
			if err := importRacesAndClasses(ctx, a); err != nil {
				return err
			}
			if err := importProfessions(ctx, a); err != nil {
				return err
			}
			_, err := a.gamedata.ImportRecipesAndReagents(ctx)
			return err
		}},
		{"commodities", cfg.Commodities, func(ctx context.Context) error {
			_, err := a.auctionhouse.ImportCommodities(ctx)
			return err
		}},
		{"roster", cfg.Roster, func(ctx context.Context) error {
			var errs []error
			for _, g := range guilds {
				if _, err := a.guild.SyncGuildRoster(ctx, g[0], g[1]); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		}},
		{"characters", cfg.Characters, func(ctx context.Context) error {
			_, err := a.guild.SyncCharacters(ctx)
			return err
		}},
		{"recipes", cfg.Recipes, func(ctx context.Context) error {
			_, err := a.guild.SyncCharacterRecipes(ctx)
			return err
		}},
	}

	for _, job := range jobs {
		if job.name == "roster" && len(guilds) == 0 {
			a.logger.Info("No guilds configured, roster job disabled")
			continue
		}
		if err := s.Add(job.name, job.spec, job.fn); err != nil {
			return nil, err
		}
	}
	return s, nil
}
