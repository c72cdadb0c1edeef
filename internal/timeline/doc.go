// Package timeline lays generated assets out on a non-linear-editing
// timeline and serializes the result as an FCPXML project document.
//
// The package owns the deterministic core of an assembly run: total duration
// resolution, resource table construction, sequential track layout, document
// serialization, and structural validation of the document it produced.
// Everything here is a pure function of one manifest snapshot; the only side
// effects are the document write and the validator's re-read.
//
// Known limitation: the audio and visual tracks are placed on independent
// zero-based offsets. Image N is not guaranteed to display while the matching
// script section's narration plays; the output is a rough cut for manual
// review, not a synchronized edit.
package timeline
