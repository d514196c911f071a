// Package loader provides the plugin-like feature loading system.
//
// Each domain package (gamedata, guild, auctionhouse) exposes a Feature that
// registers its read routes. The Manager keeps the registry and loads the
// enabled features onto the Fiber router when the server starts.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
