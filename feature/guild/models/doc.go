// Package models defines guilds, their characters and the recipes each
// character knows.
package models
