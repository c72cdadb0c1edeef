package mixdown_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"montage/internal/manifest"
	"montage/internal/mixdown"
	"montage/internal/testsupport"
	"montage/internal/timeline"
)

func audioAsset(id, path string, role manifest.Role) manifest.Asset {
	return manifest.Asset{ID: id, Path: path, Kind: manifest.KindAudio, Meta: manifest.Metadata{Role: role}}
}

func TestDeriveClassifiesByTag(t *testing.T) {
	m := &manifest.Manifest{
		JobID: "job_tagged",
		Assets: manifest.Collection{
			Audio: []manifest.Asset{
				audioAsset("a1", "/a/voice.wav", manifest.RoleVoiceover),
				audioAsset("a2", "/a/bg.mp3", manifest.RoleMusic),
			},
		},
	}
	req := mixdown.Derive(m, m.ProjectID(), "/out/audio")
	if req.Voiceover.Path != "/a/voice.wav" {
		t.Fatalf("voiceover path = %q", req.Voiceover.Path)
	}
	if req.Music.Path != "/a/bg.mp3" {
		t.Fatalf("music path = %q", req.Music.Path)
	}
}

func TestDeriveClassificationIgnoresListOrder(t *testing.T) {
	m := &manifest.Manifest{
		JobID: "job_reversed",
		Assets: manifest.Collection{
			Audio: []manifest.Asset{
				audioAsset("a1", "/a/bg.mp3", manifest.RoleMusic),
				audioAsset("a2", "/a/voice.wav", manifest.RoleVoiceover),
			},
		},
	}
	req := mixdown.Derive(m, m.ProjectID(), "/out/audio")
	if req.Voiceover.Path != "/a/voice.wav" || req.Music.Path != "/a/bg.mp3" {
		t.Fatalf("classification depended on order: %+v", req)
	}
}

func TestDerivePositionalFallback(t *testing.T) {
	m := &manifest.Manifest{
		JobID: "job_untagged",
		Assets: manifest.Collection{
			Audio: []manifest.Asset{
				audioAsset("a1", "/a/first.wav", manifest.RoleUnknown),
				audioAsset("a2", "/a/second.wav", manifest.RoleUnknown),
			},
		},
	}
	req := mixdown.Derive(m, m.ProjectID(), "/out/audio")
	if req.Voiceover.Path != "/a/first.wav" {
		t.Fatalf("fallback voiceover = %q", req.Voiceover.Path)
	}
	if req.Music.Path != "/a/second.wav" {
		t.Fatalf("fallback music = %q", req.Music.Path)
	}
}

func TestDeriveMusicSubstringInID(t *testing.T) {
	m := &manifest.Manifest{
		JobID: "job_substr",
		Assets: manifest.Collection{
			Audio: []manifest.Asset{
				{ID: "audio_music_xyz", Path: "/a/bed.mp3", Kind: manifest.KindAudio},
				{ID: "audio_speech", Path: "/a/talk.wav", Kind: manifest.KindAudio,
					Meta: manifest.Metadata{TextContent: "hello"}},
			},
		},
	}
	req := mixdown.Derive(m, m.ProjectID(), "/out/audio")
	if req.Voiceover.Path != "/a/talk.wav" {
		t.Fatalf("text content should mark narration: %+v", req.Voiceover)
	}
	if req.Music.Path != "/a/bed.mp3" {
		t.Fatalf("music id substring should mark background: %+v", req.Music)
	}
}

func TestDeriveNoAudioYieldsEmptyPaths(t *testing.T) {
	m := &manifest.Manifest{JobID: "job_silent"}
	req := mixdown.Derive(m, m.ProjectID(), "/out/audio")
	if req.Voiceover.Path != "" || req.Music.Path != "" {
		t.Fatalf("expected empty paths, got: %+v", req)
	}
}

func TestDeriveFixedParameters(t *testing.T) {
	m := testsupport.SampleManifest()
	req := mixdown.Derive(m, m.ProjectID(), "/out/audio")

	if req.Voiceover.GainDB != 0.0 || !req.Voiceover.Normalize {
		t.Fatalf("unexpected voiceover params: %+v", req.Voiceover)
	}
	if req.Music.GainDB != -6.0 || req.Music.DuckAmountDB != -12.0 || req.Music.DuckThresholdDB != -24.0 {
		t.Fatalf("unexpected music params: %+v", req.Music)
	}
	if req.Output.TargetLUFS != -14.0 || req.Output.TruePeakDB != -1.0 {
		t.Fatalf("unexpected output params: %+v", req.Output)
	}
	if req.Output.Path != filepath.Join("/out/audio", "test_job_123_mixed.wav") {
		t.Fatalf("unexpected output path: %q", req.Output.Path)
	}
}

func TestDeriveDurationMatchesTimelineResolver(t *testing.T) {
	m := testsupport.SampleManifest()
	req := mixdown.Derive(m, m.ProjectID(), "/out/audio")
	if req.Timeline.TotalDuration != timeline.TotalDuration(m) {
		t.Fatalf("mix request duration %v differs from resolver %v",
			req.Timeline.TotalDuration, timeline.TotalDuration(m))
	}
	if req.Timeline.TotalDuration != 30.0 {
		t.Fatalf("unexpected total duration: %v", req.Timeline.TotalDuration)
	}
}

func TestWriteProducesIndentedJSON(t *testing.T) {
	m := testsupport.SampleManifest()
	req := mixdown.Derive(m, m.ProjectID(), "/out/audio")
	path := filepath.Join(t.TempDir(), "mix_request.json")

	if err := mixdown.Write(req, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["project_id"] != "test_job_123" {
		t.Fatalf("unexpected project id: %v", decoded["project_id"])
	}
	timelineSection, ok := decoded["timeline"].(map[string]any)
	if !ok || timelineSection["total_duration"] != 30.0 {
		t.Fatalf("unexpected timeline section: %v", decoded["timeline"])
	}
}
