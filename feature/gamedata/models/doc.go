// Package models defines the catalog reference data stored by the gamedata
// importer. Ids are the upstream-assigned integer ids.
package models
