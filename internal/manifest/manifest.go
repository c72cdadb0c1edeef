package manifest

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the media type of one asset record.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// Role classifies an audio asset's function in the final mix.
type Role string

const (
	RoleUnknown   Role = ""
	RoleVoiceover Role = "voiceover"
	RoleMusic     Role = "music"
	RoleHero      Role = "hero"
	RoleOther     Role = "other"
)

// ParseRole maps an upstream metadata type tag onto a Role. Unrecognized
// tags become RoleOther; absent tags stay RoleUnknown.
func ParseRole(tag string) Role {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "":
		return RoleUnknown
	case "voiceover":
		return RoleVoiceover
	case "music":
		return RoleMusic
	case "hero":
		return RoleHero
	default:
		return RoleOther
	}
}

// Dimensions records pixel dimensions an upstream generator reported.
type Dimensions struct {
	Width  int
	Height int
}

// Metadata carries the typed subset of upstream metadata this system reads.
// Everything else in the upstream bag is ignored at ingestion.
type Metadata struct {
	DurationSeconds *float64
	Dimensions      *Dimensions
	Role            Role
	TextContent     string
}

// Asset is one generated media file catalogued by the upstream librarian.
type Asset struct {
	ID        string
	Path      string
	Kind      Kind
	SectionID string
	Meta      Metadata
}

// Resolvable reports whether the asset can be referenced on a timeline.
// Both the resource table and the track layout engine must use this one
// predicate so they can never disagree about which assets to skip.
func (a Asset) Resolvable() bool {
	return strings.TrimSpace(a.Path) != ""
}

// DeclaredDuration returns the asset's reported duration, or fallback when
// the upstream generator did not report one.
func (a Asset) DeclaredDuration(fallback float64) float64 {
	if a.Meta.DurationSeconds != nil {
		return *a.Meta.DurationSeconds
	}
	return fallback
}

// Section is one script section with its narration text.
type Section struct {
	ID   string
	Text string
}

// Script is the structured script document attached to a manifest.
type Script struct {
	Title    string
	Sections []Section
}

// Collection groups asset records by kind, in upstream append order.
// Order is semantically significant: it drives track layout and the
// positional fallback for mix classification.
type Collection struct {
	Images []Asset
	Videos []Asset
	Audio  []Asset
}

// Manifest is the append-only catalog of generated assets for one job.
// Assembly treats it as read-only input.
type Manifest struct {
	JobID  string
	Script *Script
	Assets Collection
}

// ProjectID returns the job identifier, or a generated fallback when the
// upstream catalog did not assign one.
func (m *Manifest) ProjectID() string {
	if id := strings.TrimSpace(m.JobID); id != "" {
		return id
	}
	raw := uuid.New()
	return "project_" + hex.EncodeToString(raw[:])[:8]
}

// Title recovers a human-readable project title from the script.
func (m *Manifest) Title() string {
	if m.Script != nil {
		if title := strings.TrimSpace(m.Script.Title); title != "" {
			return title
		}
	}
	return "Untitled Project"
}
