package config

import (
	"fmt"
	"reflect"
	"strings"

	"wowsync/core/battlenet"
	"wowsync/core/database"
	"wowsync/core/logger"
	"wowsync/core/market"
	"wowsync/core/scheduler"
	"wowsync/core/server"
	"wowsync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP read API.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the snapshot archive (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the canonical store.
	Database database.Config `mapstructure:"database"`
	// Battlenet holds the upstream API client configuration.
	Battlenet battlenet.Config `mapstructure:"battlenet"`
	// Market tunes the market price resolver.
	Market market.Config `mapstructure:"market"`
	// Schedule holds the cron specs of the periodic jobs.
	Schedule scheduler.Config `mapstructure:"schedule"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Locate the .env file next to the working directory or under path
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// 2. Load it into the process environment. A missing file is fine in
	// production, where the variables come from the container
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// 3. Register every key with its default so AutomaticEnv can find it
	bindValues(v, Config{}, "")

	// 4. Map environment variables to nested keys (e.g. BATTLENET_CLIENT_ID -> battlenet.client_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 5. Decode into the typed config; durations and lists are parsed by
	// viper's default decode hooks
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings needed by commands that talk to the upstream API.
func (c *Config) Validate() error {
	if err := c.Battlenet.Validate(); err != nil {
		return err
	}
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// Accept both Config{} and &Config{}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Fields without a mapstructure tag are not configurable
		if tag == "" {
			continue
		}

		// Dotted key, e.g. battlenet.client_id
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// Partial configs nest one level per package; recurse into them
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
