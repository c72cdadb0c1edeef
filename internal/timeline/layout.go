package timeline

import "montage/internal/manifest"

// PlacedClip is a resource reference annotated with a start offset and
// duration on a specific track.
type PlacedClip struct {
	Ref      string
	Name     string
	Offset   float64
	Duration float64
	Kind     manifest.Kind
}

// Layout holds the two placed-clip sequences of one timeline. Visual and
// audio offsets both start at zero: the tracks are siblings in the output
// document, not concatenated, and no synchronization between them is
// attempted beyond manifest ordering.
type Layout struct {
	Visual []PlacedClip
	Audio  []PlacedClip
}

// LayoutTracks walks the manifest per track type and assigns non-overlapping
// sequential offsets. On the visual track all videos are placed first, then
// all images, regardless of section association. Assets the resource table
// skipped are skipped here too, advancing nothing.
func LayoutTracks(m *manifest.Manifest, table *ResourceTable) Layout {
	var layout Layout

	offset := 0.0
	offset = placeSequential(&layout.Visual, m.Assets.Videos, table, offset)
	placeSequential(&layout.Visual, m.Assets.Images, table, offset)

	placeSequential(&layout.Audio, m.Assets.Audio, table, 0.0)

	return layout
}

func placeSequential(out *[]PlacedClip, assets []manifest.Asset, table *ResourceTable, offset float64) float64 {
	for _, asset := range assets {
		if !asset.Resolvable() {
			continue
		}
		resource, ok := table.Resolve(asset.Path)
		if !ok {
			continue
		}
		*out = append(*out, PlacedClip{
			Ref:      resource.ID,
			Name:     resource.Name,
			Offset:   offset,
			Duration: resource.Duration,
			Kind:     asset.Kind,
		})
		offset += resource.Duration
	}
	return offset
}

// VisualSpan returns the end offset of the last visual clip.
func (l Layout) VisualSpan() float64 {
	return spanOf(l.Visual)
}

// AudioSpan returns the end offset of the last audio clip.
func (l Layout) AudioSpan() float64 {
	return spanOf(l.Audio)
}

func spanOf(clips []PlacedClip) float64 {
	if len(clips) == 0 {
		return 0
	}
	last := clips[len(clips)-1]
	return last.Offset + last.Duration
}
