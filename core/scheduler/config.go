package scheduler

// Config holds the cron specs of the periodic sync jobs. An empty spec
// disables the job.
type Config struct {
	// Timezone is the location cron specs are evaluated in.
	Timezone string `mapstructure:"timezone" default:"UTC"`
	// RunOnStart runs every enabled job once when the scheduler starts.
	RunOnStart bool `mapstructure:"run_on_start" default:"false"`
	// Commodities imports the hourly commodity snapshot.
	Commodities string `mapstructure:"commodities" default:"5 * * * *"`
	// Catalog imports races, classes, professions, and recipes.
	Catalog string `mapstructure:"catalog" default:"0 4 * * 2"`
	// Roster reconciles the configured guild rosters.
	Roster string `mapstructure:"roster" default:"0 */6 * * *"`
	// Characters refreshes character profiles.
	Characters string `mapstructure:"characters" default:"30 3 * * *"`
	// Recipes reconciles known recipes.
	Recipes string `mapstructure:"recipes" default:"0 5 * * *"`
	// Guilds lists the guilds the roster job syncs, as realm/name pairs.
	Guilds []string `mapstructure:"guilds" default:""`
}
