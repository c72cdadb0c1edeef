package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type manifestWire struct {
	JobID  string                 `json:"job_id" yaml:"job_id"`
	Script *scriptWire            `json:"script" yaml:"script"`
	Assets map[string][]assetWire `json:"assets" yaml:"assets"`
}

type scriptWire struct {
	Title    string        `json:"title" yaml:"title"`
	Sections []sectionWire `json:"sections" yaml:"sections"`
}

type sectionWire struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

type assetWire struct {
	ID        string        `json:"id" yaml:"id"`
	Path      string        `json:"path" yaml:"path"`
	Type      string        `json:"type" yaml:"type"`
	SectionID string        `json:"section_id" yaml:"section_id"`
	Metadata  *metadataWire `json:"metadata" yaml:"metadata"`
}

type metadataWire struct {
	DurationSeconds *float64        `json:"duration_seconds" yaml:"duration_seconds"`
	Dimensions      *dimensionsWire `json:"dimensions" yaml:"dimensions"`
	Type            string          `json:"type" yaml:"type"`
	TextContent     string          `json:"text_content" yaml:"text_content"`
}

type dimensionsWire struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Load reads a manifest file. The format is chosen by extension: .yaml/.yml
// decode as YAML, everything else as JSON (the upstream librarian writes JSON).
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Parse decodes a JSON manifest document.
func Parse(data []byte) (*Manifest, error) {
	var wire manifestWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return wire.toManifest(), nil
}

// ParseYAML decodes a YAML manifest document.
func ParseYAML(data []byte) (*Manifest, error) {
	var wire manifestWire
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return wire.toManifest(), nil
}

func (w manifestWire) toManifest() *Manifest {
	m := &Manifest{JobID: strings.TrimSpace(w.JobID)}
	if w.Script != nil {
		script := &Script{Title: w.Script.Title}
		for _, section := range w.Script.Sections {
			script.Sections = append(script.Sections, Section{ID: section.ID, Text: section.Text})
		}
		m.Script = script
	}
	m.Assets.Images = convertAssets(w.Assets["images"], KindImage)
	m.Assets.Videos = convertAssets(w.Assets["videos"], KindVideo)
	m.Assets.Audio = convertAssets(w.Assets["audio"], KindAudio)
	return m
}

func convertAssets(records []assetWire, fallback Kind) []Asset {
	if len(records) == 0 {
		return nil
	}
	assets := make([]Asset, 0, len(records))
	for _, record := range records {
		kind := fallback
		if t := strings.ToLower(strings.TrimSpace(record.Type)); t != "" {
			kind = Kind(t)
		}
		asset := Asset{
			ID:        record.ID,
			Path:      record.Path,
			Kind:      kind,
			SectionID: record.SectionID,
		}
		if record.Metadata != nil {
			asset.Meta = Metadata{
				DurationSeconds: record.Metadata.DurationSeconds,
				Role:            ParseRole(record.Metadata.Type),
				TextContent:     record.Metadata.TextContent,
			}
			if record.Metadata.Dimensions != nil {
				asset.Meta.Dimensions = &Dimensions{
					Width:  record.Metadata.Dimensions.Width,
					Height: record.Metadata.Dimensions.Height,
				}
			}
		}
		assets = append(assets, asset)
	}
	return assets
}
