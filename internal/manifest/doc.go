// Package manifest models the asset manifest produced by the upstream asset
// catalog for one generation job.
//
// The manifest is the single input of a timeline assembly run. It is decoded
// once into typed structures (durations, dimensions, role tags) so downstream
// components never re-parse loosely typed metadata maps, and it is treated as
// immutable for the duration of a run.
package manifest
