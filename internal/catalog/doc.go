// Package catalog persists a ledger of assembly runs backed by SQLite.
//
// Every completed run records its job identifier, output document paths,
// and validation outcome so operators can audit what was produced for a
// job without re-opening the documents. The catalog is append-only from
// the assembler's point of view.
package catalog
