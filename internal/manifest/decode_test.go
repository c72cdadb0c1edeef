package manifest_test

import (
	"testing"

	"montage/internal/manifest"
)

const sampleJSON = `{
  "job_id": "test_job_123",
  "script": {
    "title": "Test Video Project",
    "sections": [
      {"id": "section_1", "text": "This is the first section."},
      {"id": "section_2", "text": "This is the second section."}
    ]
  },
  "assets": {
    "images": [
      {
        "id": "image_section_1_abc1",
        "path": "/assets/images/image1.png",
        "type": "image",
        "section_id": "section_1",
        "metadata": {"prompt": "A landscape", "dimensions": {"width": 1920, "height": 1080}}
      },
      {
        "id": "image_section_2_abc2",
        "path": "/assets/images/image2.png",
        "type": "image",
        "section_id": "section_2",
        "metadata": {"dimensions": {"width": 1920, "height": 1080}}
      }
    ],
    "videos": [
      {
        "id": "video_section_1_def1",
        "path": "/assets/videos/video1.mp4",
        "type": "video",
        "section_id": "section_1",
        "metadata": {"duration_seconds": 10.0, "fps": 30}
      }
    ],
    "audio": [
      {
        "id": "audio_voiceover_ghi1",
        "path": "/assets/audio/voiceover.wav",
        "type": "audio",
        "metadata": {"type": "voiceover", "duration_seconds": 15.0, "text_content": "Narration text."}
      },
      {
        "id": "audio_music_ghi2",
        "path": "/assets/audio/music.wav",
        "type": "audio",
        "metadata": {"type": "music", "duration_seconds": 30.0}
      }
    ]
  }
}`

const sampleYAML = `
job_id: test_job_123
script:
  title: Test Video Project
  sections:
    - id: section_1
      text: This is the first section.
assets:
  videos:
    - id: video_section_1_def1
      path: /assets/videos/video1.mp4
      type: video
      metadata:
        duration_seconds: 10.0
  audio:
    - id: audio_voiceover_ghi1
      path: /assets/audio/voiceover.wav
      type: audio
      metadata:
        type: voiceover
        duration_seconds: 15.0
`

func TestParseSampleManifest(t *testing.T) {
	m, err := manifest.Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.JobID != "test_job_123" {
		t.Fatalf("unexpected job id: %q", m.JobID)
	}
	if m.Title() != "Test Video Project" {
		t.Fatalf("unexpected title: %q", m.Title())
	}
	if len(m.Assets.Images) != 2 || len(m.Assets.Videos) != 1 || len(m.Assets.Audio) != 2 {
		t.Fatalf("unexpected asset counts: %+v", m.Assets)
	}

	video := m.Assets.Videos[0]
	if video.Kind != manifest.KindVideo {
		t.Fatalf("unexpected video kind: %q", video.Kind)
	}
	if video.DeclaredDuration(5.0) != 10.0 {
		t.Fatalf("unexpected video duration: %v", video.DeclaredDuration(5.0))
	}

	image := m.Assets.Images[0]
	if image.Meta.Dimensions == nil || image.Meta.Dimensions.Width != 1920 {
		t.Fatalf("dimensions not decoded: %+v", image.Meta.Dimensions)
	}
	if image.SectionID != "section_1" {
		t.Fatalf("section id not decoded: %q", image.SectionID)
	}

	voice := m.Assets.Audio[0]
	if voice.Meta.Role != manifest.RoleVoiceover {
		t.Fatalf("unexpected role: %q", voice.Meta.Role)
	}
	if voice.Meta.TextContent == "" {
		t.Fatal("text content not decoded")
	}
	if m.Assets.Audio[1].Meta.Role != manifest.RoleMusic {
		t.Fatalf("unexpected music role: %q", m.Assets.Audio[1].Meta.Role)
	}
}

func TestParseYAMLMatchesJSONSemantics(t *testing.T) {
	m, err := manifest.ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if m.JobID != "test_job_123" {
		t.Fatalf("unexpected job id: %q", m.JobID)
	}
	if len(m.Assets.Videos) != 1 || len(m.Assets.Audio) != 1 {
		t.Fatalf("unexpected asset counts: %+v", m.Assets)
	}
	if m.Assets.Videos[0].DeclaredDuration(5.0) != 10.0 {
		t.Fatalf("unexpected duration: %v", m.Assets.Videos[0].DeclaredDuration(5.0))
	}
	if m.Assets.Audio[0].Meta.Role != manifest.RoleVoiceover {
		t.Fatalf("unexpected role: %q", m.Assets.Audio[0].Meta.Role)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := manifest.Parse([]byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMissingDurationStaysNil(t *testing.T) {
	m, err := manifest.Parse([]byte(`{"job_id":"j","assets":{"videos":[{"id":"v1","path":"/v.mp4","type":"video","metadata":{}}]}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	video := m.Assets.Videos[0]
	if video.Meta.DurationSeconds != nil {
		t.Fatalf("expected nil duration, got %v", *video.Meta.DurationSeconds)
	}
	if video.DeclaredDuration(5.0) != 5.0 {
		t.Fatalf("fallback not applied: %v", video.DeclaredDuration(5.0))
	}
}
