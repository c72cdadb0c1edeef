package timeline_test

import (
	"testing"

	"montage/internal/manifest"
	"montage/internal/testsupport"
	"montage/internal/timeline"
)

func TestTotalDurationAudioDominates(t *testing.T) {
	m := testsupport.SampleManifest()

	// Visual span is 10s (video) + 2*5s (images) = 20s, but the 30s music
	// bed is longer and wins.
	if got := timeline.TotalDuration(m); got != 30.0 {
		t.Fatalf("TotalDuration = %v, want 30.0", got)
	}
}

func TestTotalDurationVisualDominates(t *testing.T) {
	m := testsupport.SampleManifest()
	m.Assets.Audio = nil

	if got := timeline.TotalDuration(m); got != 20.0 {
		t.Fatalf("TotalDuration = %v, want 20.0", got)
	}
}

func TestTotalDurationEmptyManifestHitsFloor(t *testing.T) {
	m := &manifest.Manifest{JobID: "empty"}
	if got := timeline.TotalDuration(m); got != 10.0 {
		t.Fatalf("TotalDuration = %v, want the 10.0 floor", got)
	}
}

func TestTotalDurationMissingDurationContributesZero(t *testing.T) {
	m := &manifest.Manifest{
		Assets: manifest.Collection{
			Videos: []manifest.Asset{
				{ID: "v1", Path: "/v1.mp4", Kind: manifest.KindVideo},
				{ID: "v2", Path: "/v2.mp4", Kind: manifest.KindVideo, Meta: manifest.Metadata{DurationSeconds: testsupport.Float(12.0)}},
			},
		},
	}
	if got := timeline.TotalDuration(m); got != 12.0 {
		t.Fatalf("TotalDuration = %v, want 12.0", got)
	}
}

func TestTotalDurationMonotonicUnderAddedAssets(t *testing.T) {
	m := testsupport.SampleManifest()
	before := timeline.TotalDuration(m)

	m.Assets.Videos = append(m.Assets.Videos, manifest.Asset{
		ID:   "video_extra",
		Path: "/assets/videos/extra.mp4",
		Kind: manifest.KindVideo,
		Meta: manifest.Metadata{DurationSeconds: testsupport.Float(25.0)},
	})
	after := timeline.TotalDuration(m)
	if after < before {
		t.Fatalf("duration decreased after adding an asset: %v -> %v", before, after)
	}

	m.Assets.Images = append(m.Assets.Images, manifest.Asset{ID: "img_extra", Path: "/i.png", Kind: manifest.KindImage})
	final := timeline.TotalDuration(m)
	if final < after {
		t.Fatalf("duration decreased after adding an image: %v -> %v", after, final)
	}
}
