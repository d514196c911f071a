// Package database opens the canonical store and provides the small set of
// generic helpers the feature stores share.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and
// tests) connections from the application's configuration.
//
// # Helpers
//
//   - GetOrCreate: load-by-primary-key or insert, reporting whether a row was created.
//   - Get: load-by-primary-key, mapping a miss to ErrNotFound.
//   - IDs: pluck every primary key of a table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	created, err := database.GetOrCreate(ctx, db, race.ID, &race)
package database
