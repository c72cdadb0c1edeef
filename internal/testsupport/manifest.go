package testsupport

import "montage/internal/manifest"

// SampleManifest returns the canonical fixture used across the test suite:
// one 10s video, two still images, a 15s voiceover, and a 30s music bed,
// giving a 30s resolved total (audio dominates the 20s visual span).
func SampleManifest() *manifest.Manifest {
	return &manifest.Manifest{
		JobID: "test_job_123",
		Script: &manifest.Script{
			Title: "Test Video Project",
			Sections: []manifest.Section{
				{ID: "section_1", Text: "This is the first section of the test script."},
				{ID: "section_2", Text: "This is the second section of the test script."},
			},
		},
		Assets: manifest.Collection{
			Images: []manifest.Asset{
				{
					ID:        "image_section_1_abc1",
					Path:      "/assets/images/image1.png",
					Kind:      manifest.KindImage,
					SectionID: "section_1",
					Meta:      manifest.Metadata{Dimensions: &manifest.Dimensions{Width: 1920, Height: 1080}},
				},
				{
					ID:        "image_section_2_abc2",
					Path:      "/assets/images/image2.png",
					Kind:      manifest.KindImage,
					SectionID: "section_2",
					Meta:      manifest.Metadata{Dimensions: &manifest.Dimensions{Width: 1920, Height: 1080}},
				},
			},
			Videos: []manifest.Asset{
				{
					ID:        "video_section_1_def1",
					Path:      "/assets/videos/video1.mp4",
					Kind:      manifest.KindVideo,
					SectionID: "section_1",
					Meta:      manifest.Metadata{DurationSeconds: Float(10.0)},
				},
			},
			Audio: []manifest.Asset{
				{
					ID:   "audio_voiceover_ghi1",
					Path: "/assets/audio/voiceover.wav",
					Kind: manifest.KindAudio,
					Meta: manifest.Metadata{
						DurationSeconds: Float(15.0),
						Role:            manifest.RoleVoiceover,
						TextContent:     "This is the voiceover for the test video.",
					},
				},
				{
					ID:   "audio_music_ghi2",
					Path: "/assets/audio/music.wav",
					Kind: manifest.KindAudio,
					Meta: manifest.Metadata{
						DurationSeconds: Float(30.0),
						Role:            manifest.RoleMusic,
					},
				},
			},
		},
	}
}

// Float returns a pointer to v for optional metadata fields.
func Float(v float64) *float64 {
	return &v
}
