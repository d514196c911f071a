// Package guild tracks guilds, their member characters and the recipes each
// character knows.
//
// Roster and known-recipe syncs are set reconciliations built on
// core/reconcile: the stored key set is compared with the upstream one and
// only the difference is written. Members that left a guild are detached,
// not deleted, so their profile and recipe history survive a guild change.
package guild
