// Package assembler orchestrates one timeline assembly run: it turns an
// asset manifest into a serialized project document and a companion mix
// request, optionally re-validates the written document, and records the
// outcome in the run catalog.
package assembler
