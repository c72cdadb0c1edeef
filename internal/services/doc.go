// Package services defines shared utilities consumed by the assembly
// components and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp job IDs and component names for logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent between the assembler and its callers.
//
// Use these helpers when wiring new assembly logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
