// Package batch reads batch input files with one Spanish sentence per line,
// optionally followed by "= note".
package batch
