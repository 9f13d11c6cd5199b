// Package pagination provides utilities for CLI pagination, sorting, and result formatting.
//
// This package contains shared pagination logic for commands that print long
// result lists, including:
//   - Params: CLI flag parsing and validation
//   - Meta: Response metadata for paginated results
//   - RecordSorter: Sorting for benchmark render records with field validation
//
// The pagination package ensures consistent pagination behavior across all
// renderlab commands that return lists of items.
package pagination
