// Package config provides configuration management for wowsync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section, and every key can be overridden by an environment variable named
// after its path (battlenet.client_id -> BATTLENET_CLIENT_ID).
//
// # Configuration Structure
//
//   - Server: HTTP read API settings (port, API key)
//   - Database: canonical store driver and connection
//   - Storage: S3/MinIO snapshot archive
//   - Log: logging level and format
//   - Battlenet: upstream credentials, region, retry and pacing
//   - Market: price clustering tunables
//   - Schedule: cron specs of the periodic jobs
//
// Durations accept Go syntax ("1s", "180s") and lists are comma separated
// ("429,502").
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Battlenet.Region)
package config
