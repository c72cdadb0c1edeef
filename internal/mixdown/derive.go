package mixdown

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"montage/internal/manifest"
	"montage/internal/timeline"
)

// Fixed mix parameters. These are the house defaults of the downstream
// mixer's loudnorm/sidechain chain, not user configuration.
const (
	VoiceoverGainDB    = 0.0
	MusicGainDB        = -6.0
	DuckAmountDB       = -12.0
	DuckThresholdDB    = -24.0
	TargetLoudnessLUFS = -14.0
	TruePeakCeilingDB  = -1.0
)

// Voiceover describes the narration track of a mix request.
type Voiceover struct {
	Path      string  `json:"path"`
	GainDB    float64 `json:"gain"`
	Normalize bool    `json:"normalize"`
}

// Music describes the background track of a mix request.
type Music struct {
	Path            string  `json:"path"`
	GainDB          float64 `json:"gain"`
	DuckAmountDB    float64 `json:"duck_amount"`
	DuckThresholdDB float64 `json:"duck_threshold"`
}

// Output describes the mixer's render target.
type Output struct {
	Path       string  `json:"path"`
	TargetLUFS float64 `json:"target_lufs"`
	TruePeakDB float64 `json:"true_peak"`
}

// Timeline carries timeline facts the mixer needs.
type Timeline struct {
	TotalDuration float64 `json:"total_duration"`
}

// Request is the structured mix request document.
type Request struct {
	ProjectID string    `json:"project_id"`
	Voiceover Voiceover `json:"voiceover"`
	Music     Music     `json:"music"`
	Output    Output    `json:"output"`
	Timeline  Timeline  `json:"timeline"`
}

// Derive builds a mix request from the manifest. projectID must be the same
// identifier the project document was built with, and audioDir is where the
// mixed output will be rendered. The reported total duration delegates to
// the timeline duration resolver, so both documents always agree.
func Derive(m *manifest.Manifest, projectID, audioDir string) Request {
	narration, background := classify(m.Assets.Audio)

	return Request{
		ProjectID: projectID,
		Voiceover: Voiceover{
			Path:      narration,
			GainDB:    VoiceoverGainDB,
			Normalize: true,
		},
		Music: Music{
			Path:            background,
			GainDB:          MusicGainDB,
			DuckAmountDB:    DuckAmountDB,
			DuckThresholdDB: DuckThresholdDB,
		},
		Output: Output{
			Path:       filepath.Join(audioDir, projectID+"_mixed.wav"),
			TargetLUFS: TargetLoudnessLUFS,
			TruePeakDB: TruePeakCeilingDB,
		},
		Timeline: Timeline{TotalDuration: timeline.TotalDuration(m)},
	}
}

// classify resolves the narration and background paths. Explicit metadata
// tags win; when no tag matched anything, manifest order decides: the first
// audio asset narrates, the second (if any) becomes background.
func classify(audio []manifest.Asset) (narration, background string) {
	for _, asset := range audio {
		if narration == "" && isNarration(asset) {
			narration = asset.Path
			continue
		}
		if background == "" && isBackground(asset) {
			background = asset.Path
		}
	}

	if narration == "" && background == "" && len(audio) > 0 {
		narration = audio[0].Path
		if len(audio) > 1 {
			background = audio[1].Path
		}
	}
	return narration, background
}

func isNarration(asset manifest.Asset) bool {
	return asset.Meta.Role == manifest.RoleVoiceover || asset.Meta.TextContent != ""
}

func isBackground(asset manifest.Asset) bool {
	return asset.Meta.Role == manifest.RoleMusic || strings.Contains(asset.ID, "music")
}

// Write serializes the request as indented JSON to path.
func Write(req Request, path string) error {
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal mix request: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write mix request: %w", err)
	}
	return nil
}
