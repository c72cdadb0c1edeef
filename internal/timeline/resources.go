package timeline

import (
	"fmt"
	"path/filepath"

	"montage/internal/manifest"
)

// Resource is one declared media resource in the project document.
type Resource struct {
	ID       string
	Name     string
	Source   string
	Duration float64
	Kind     manifest.Kind
	HasVideo bool
	HasAudio bool
}

// ResourceTable maps asset paths to declared resources. It is built fresh
// per assembly run; the identifier counter is owned by the single
// BuildResources call, never shared process state.
type ResourceTable struct {
	ids       map[string]string
	resources []Resource
	warnings  []string
}

// BuildResources assigns a stable per-kind identifier to every referenced
// asset file, iterating videos, then images, then audio. The integer counter
// is shared across kinds and never reused within one run (v1, v2, i3, a4...).
// Assets without a path are skipped with a recorded warning.
func BuildResources(m *manifest.Manifest) *ResourceTable {
	table := &ResourceTable{ids: make(map[string]string)}
	counter := 1

	counter = table.addAll(m.Assets.Videos, "v", counter)
	counter = table.addAll(m.Assets.Images, "i", counter)
	table.addAll(m.Assets.Audio, "a", counter)

	return table
}

func (t *ResourceTable) addAll(assets []manifest.Asset, prefix string, counter int) int {
	for _, asset := range assets {
		if !asset.Resolvable() {
			t.warnings = append(t.warnings, fmt.Sprintf("asset %s has no path; excluded from resources", asset.ID))
			continue
		}
		if _, exists := t.ids[asset.Path]; exists {
			continue
		}

		resource := Resource{
			ID:     fmt.Sprintf("%s%d", prefix, counter),
			Name:   filepath.Base(asset.Path),
			Source: "file://" + asset.Path,
			Kind:   asset.Kind,
		}
		switch asset.Kind {
		case manifest.KindImage:
			resource.Duration = ImageDisplaySeconds
			resource.HasVideo = true
		case manifest.KindAudio:
			resource.Duration = asset.DeclaredDuration(DefaultClipSeconds)
			resource.HasAudio = true
		default:
			resource.Duration = asset.DeclaredDuration(DefaultClipSeconds)
			resource.HasVideo = true
			resource.HasAudio = true
		}

		t.ids[asset.Path] = resource.ID
		t.resources = append(t.resources, resource)
		counter++
	}
	return counter
}

// Lookup returns the resource identifier assigned to path.
func (t *ResourceTable) Lookup(path string) (string, bool) {
	id, ok := t.ids[path]
	return id, ok
}

// Resolve returns the full resource declaration for path.
func (t *ResourceTable) Resolve(path string) (Resource, bool) {
	id, ok := t.ids[path]
	if !ok {
		return Resource{}, false
	}
	for _, resource := range t.resources {
		if resource.ID == id {
			return resource, true
		}
	}
	return Resource{}, false
}

// Resources returns the declarations in assignment order.
func (t *ResourceTable) Resources() []Resource {
	return t.resources
}

// Warnings returns the per-asset skip warnings recorded during the build.
func (t *ResourceTable) Warnings() []string {
	return t.warnings
}

// Len reports the number of declared resources.
func (t *ResourceTable) Len() int {
	return len(t.resources)
}
