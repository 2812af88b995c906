// Package curriculum loads judo techniques from the app's data stores and
// turns them into the labels the puzzle engine shows next to each piece.
package curriculum

import (
	"path"
	"strings"

	"github.com/plus3/gokyotris/puzzle"
)

// OtherGroup collects techniques that belong to no Gokyo group.
const OtherGroup = "Altre"

// DefaultMediaRoot is where relative image names are served from.
const DefaultMediaRoot = "/media"

// Technique is one row of the techniques collection.
type Technique struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Kanji    string `json:"kanji" bson:"kanji"`
	Image    string `json:"image" bson:"image"`
	Group    string `json:"group" bson:"group"`
	Category string `json:"category" bson:"category"`
	DanLevel int    `json:"dan_level" bson:"dan_level"`
	Order    int    `json:"order" bson:"order"`
}

// Eligible reports whether the technique belongs to a Gokyo group.
func (t Technique) Eligible() bool {
	g := strings.TrimSpace(t.Group)
	return g != "" && g != OtherGroup
}

var slugReplacer = strings.NewReplacer(" ", "-", "ō", "o", "ū", "u")

// Slug is the lowercased, dash-separated file stem used for stock images.
func (t Technique) Slug() string {
	return slugReplacer.Replace(strings.ToLower(t.Name))
}

// ImagePath resolves the image to show for the technique. Absolute URLs are
// kept; bare file names are placed under mediaRoot; techniques without an
// image fall back to <mediaRoot>/<slug>.webp.
func (t Technique) ImagePath(mediaRoot string) string {
	if mediaRoot == "" {
		mediaRoot = DefaultMediaRoot
	}
	if t.Image != "" {
		if strings.HasPrefix(t.Image, "http") {
			return t.Image
		}
		return path.Join(mediaRoot, t.Image)
	}
	return path.Join(mediaRoot, t.Slug()+".webp")
}

// Label converts the technique for display.
func (t Technique) Label(mediaRoot string) puzzle.Label {
	return puzzle.Label{
		Name:  strings.TrimSpace(t.Name),
		Kanji: t.Kanji,
		Image: t.ImagePath(mediaRoot),
		Group: strings.TrimSpace(t.Group),
	}
}

// Labels converts every eligible technique.
func Labels(techniques []Technique, mediaRoot string) []puzzle.Label {
	out := make([]puzzle.Label, 0, len(techniques))
	for _, t := range techniques {
		if t.Eligible() {
			out = append(out, t.Label(mediaRoot))
		}
	}
	return out
}
