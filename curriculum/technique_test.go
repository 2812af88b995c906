package curriculum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/gokyotris/curriculum"
	"github.com/plus3/gokyotris/puzzle"
)

func TestImagePath(t *testing.T) {
	tests := []struct {
		name string
		tech curriculum.Technique
		want string
	}{
		{
			name: "absolute url is kept",
			tech: curriculum.Technique{Name: "O-goshi", Image: "https://cdn.example.org/o-goshi.png"},
			want: "https://cdn.example.org/o-goshi.png",
		},
		{
			name: "bare file name goes under the media root",
			tech: curriculum.Technique{Name: "O-goshi", Image: "ogoshi.jpg"},
			want: "/media/ogoshi.jpg",
		},
		{
			name: "missing image falls back to the slug",
			tech: curriculum.Technique{Name: "Seoi nage"},
			want: "/media/seoi-nage.webp",
		},
		{
			name: "long vowels are folded",
			tech: curriculum.Technique{Name: "Ōuchi gari"},
			want: "/media/ouchi-gari.webp",
		},
		{
			name: "u with macron",
			tech: curriculum.Technique{Name: "Sumi Otoshi Kūki"},
			want: "/media/sumi-otoshi-kuki.webp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tech.ImagePath(""))
		})
	}

	assert.Equal(t, "/static/img/ogoshi.jpg", curriculum.Technique{Image: "ogoshi.jpg"}.ImagePath("/static/img"))
}

func TestLabelsSkipsIneligible(t *testing.T) {
	techniques := []curriculum.Technique{
		{Name: "Deashi harai", Kanji: "出足払", Group: "Dai Ikkyo"},
		{Name: "Juji gatame", Group: curriculum.OtherGroup},
		{Name: "Untagged", Group: "  "},
		{Name: "Uchi mata", Group: " Dai Sankyo "},
	}

	labels := curriculum.Labels(techniques, "")

	assert.Equal(t, []puzzle.Label{
		{Name: "Deashi harai", Kanji: "出足払", Image: "/media/deashi-harai.webp", Group: "Dai Ikkyo"},
		{Name: "Uchi mata", Image: "/media/uchi-mata.webp", Group: "Dai Sankyo"},
	}, labels)
}
