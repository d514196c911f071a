// Package result holds the summary value returned by every sync operation.
package result
