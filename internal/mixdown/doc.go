// Package mixdown derives the mix request document handed to the external
// audio-mixing service.
//
// It classifies the manifest's audio assets into narration and background
// roles, attaches the fixed gain/ducking/loudness parameters of the house
// mix, and reports the same total duration the timeline document declares.
// Empty track paths are legal output: the downstream mixer owns rejecting
// them.
package mixdown
