package timeline

import "montage/internal/manifest"

const (
	// ImageDisplaySeconds is the fixed display duration of a still image on
	// the visual track. Images have no intrinsic duration.
	ImageDisplaySeconds = 5.0

	// DefaultClipSeconds is the declared resource duration used when an
	// upstream generator did not report one.
	DefaultClipSeconds = 5.0

	// MinimumTotalSeconds floors the resolved timeline span.
	MinimumTotalSeconds = 10.0
)

// TotalDuration resolves the total timeline span for a manifest: the visual
// span (video durations plus a fixed slot per image) or the longest audio
// track, whichever is greater, floored at MinimumTotalSeconds.
//
// A video or audio asset without a reported duration contributes zero here;
// partial upstream generation is expected and never an error.
func TotalDuration(m *manifest.Manifest) float64 {
	visual := 0.0
	for _, video := range m.Assets.Videos {
		if video.Meta.DurationSeconds != nil {
			visual += *video.Meta.DurationSeconds
		}
	}
	visual += float64(len(m.Assets.Images)) * ImageDisplaySeconds

	audio := 0.0
	for _, clip := range m.Assets.Audio {
		if clip.Meta.DurationSeconds != nil && *clip.Meta.DurationSeconds > audio {
			audio = *clip.Meta.DurationSeconds
		}
	}

	total := max(visual, audio)
	return max(total, MinimumTotalSeconds)
}
