// Command montage assembles video project documents from asset manifests.
//
// The primary workflow is `montage assemble <manifest>`, which writes a
// project document and mix request into the configured output directories
// and records the run in the catalog. Supporting commands inspect
// manifests (duration, mixrequest), validate written documents, list
// past runs, and manage configuration.
package main
