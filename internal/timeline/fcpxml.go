package timeline

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
)

// Fixed format declaration shared by every sequence this system produces.
const (
	documentVersion = "1.9"
	formatID        = "r1"
	formatName      = "FFVideoFormat1080p30"
	frameDuration   = "1/30s"
	frameWidth      = "1920"
	frameHeight     = "1080"

	audioChannels = "2"
	audioRate     = "48000"
)

type xmlDocument struct {
	XMLName   xml.Name     `xml:"fcpxml"`
	Version   string       `xml:"version,attr"`
	Resources xmlResources `xml:"resources"`
	Library   xmlLibrary   `xml:"library"`
}

type xmlResources struct {
	Format xmlFormat  `xml:"format"`
	Assets []xmlAsset `xml:"asset"`
}

type xmlFormat struct {
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr"`
	FrameDuration string `xml:"frameDuration,attr"`
	Width         string `xml:"width,attr"`
	Height        string `xml:"height,attr"`
}

type xmlAsset struct {
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr"`
	Src           string `xml:"src,attr"`
	Start         string `xml:"start,attr"`
	Duration      string `xml:"duration,attr"`
	HasVideo      string `xml:"hasVideo,attr,omitempty"`
	HasAudio      string `xml:"hasAudio,attr,omitempty"`
	AudioChannels string `xml:"audioChannels,attr,omitempty"`
	AudioRate     string `xml:"audioRate,attr,omitempty"`
	Format        string `xml:"format,attr,omitempty"`
}

type xmlLibrary struct {
	Event xmlEvent `xml:"event"`
}

type xmlEvent struct {
	Name    string     `xml:"name,attr"`
	Project xmlProject `xml:"project"`
}

type xmlProject struct {
	Name     string      `xml:"name,attr"`
	Sequence xmlSequence `xml:"sequence"`
}

type xmlSequence struct {
	Format   string   `xml:"format,attr"`
	Duration string   `xml:"duration,attr"`
	Spine    xmlSpine `xml:"spine"`
}

type xmlSpine struct {
	Videos []xmlClip `xml:"video"`
	Audios []xmlClip `xml:"audio"`
}

type xmlClip struct {
	Ref      string `xml:"ref,attr"`
	Offset   string `xml:"offset,attr"`
	Duration string `xml:"duration,attr"`
	Name     string `xml:"name,attr"`
}

// Document is a fully laid out project ready for serialization.
type Document struct {
	ProjectID     string
	Title         string
	TotalDuration float64
	Table         *ResourceTable
	Layout        Layout
}

// Marshal renders the document as pretty-printed FCPXML. Output is
// deterministic for a fixed input: element and attribute order follow the
// struct definitions above.
func (d *Document) Marshal() ([]byte, error) {
	doc := xmlDocument{
		Version: documentVersion,
		Resources: xmlResources{
			Format: xmlFormat{
				ID:            formatID,
				Name:          formatName,
				FrameDuration: frameDuration,
				Width:         frameWidth,
				Height:        frameHeight,
			},
		},
		Library: xmlLibrary{
			Event: xmlEvent{
				Name: fmt.Sprintf("AI Video Project - %s", d.ProjectID),
				Project: xmlProject{
					Name: d.Title,
					Sequence: xmlSequence{
						Format:   formatID,
						Duration: FormatSeconds(d.TotalDuration),
					},
				},
			},
		},
	}

	for _, resource := range d.Table.Resources() {
		asset := xmlAsset{
			ID:       resource.ID,
			Name:     resource.Name,
			Src:      resource.Source,
			Start:    "0s",
			Duration: FormatSeconds(resource.Duration),
		}
		if resource.HasVideo {
			asset.HasVideo = "1"
			asset.Format = formatID
		}
		if resource.HasAudio {
			asset.HasAudio = "1"
			asset.AudioChannels = audioChannels
			asset.AudioRate = audioRate
		}
		doc.Resources.Assets = append(doc.Resources.Assets, asset)
	}

	spine := &doc.Library.Event.Project.Sequence.Spine
	for _, clip := range d.Layout.Visual {
		spine.Videos = append(spine.Videos, toXMLClip(clip))
	}
	for _, clip := range d.Layout.Audio {
		spine.Audios = append(spine.Audios, toXMLClip(clip))
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal project document: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// Write serializes the document to path.
func (d *Document) Write(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project document: %w", err)
	}
	return nil
}

func toXMLClip(clip PlacedClip) xmlClip {
	return xmlClip{
		Ref:      clip.Ref,
		Offset:   FormatSeconds(clip.Offset),
		Duration: FormatSeconds(clip.Duration),
		Name:     clip.Name,
	}
}

// FormatSeconds renders a seconds value in the document's "<N>s" form using
// the shortest representation that round-trips exactly.
func FormatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}
