// Package gamedata imports the static game catalog: playable races, classes
// and specializations, professions with their skill tiers, recipes with their
// reagents, and items.
//
// Catalog entities are keyed by the upstream id and are append-only. Every
// import is a get-or-create pass over the upstream index; an entity whose
// detail or media the API does not know is logged and recorded in the run
// summary without aborting the run.
//
// # Components
//
//   - Importer: One operation per catalog kind, plus SyncRecipe and SyncItem
//     which other features call to create single entries on demand.
//   - Store: The catalog side of the canonical store (GormStore).
//   - Handler: Exposes GET /recipes/:id.
//   - Feature: Registers the handler with the loader.
package gamedata
