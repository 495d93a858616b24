package document

import (
	"math"

	"github.com/jonathan/cv-composer/internal/theme"
)

// Photo base widths in CSS pixels, keyed by theme photoSize.
var photoBaseSize = map[string]int{
	"small":  80,
	"medium": 112,
	"large":  144,
	"xlarge": 176,
}

// Height multipliers keyed by theme photoAspect.
var photoAspectMultiplier = map[string]float64{
	"square":    1.0,
	"portrait":  1.25,
	"landscape": 0.75,
}

// PhotoDescriptor is the single source of photo geometry for every renderer.
// Sizes are CSS pixels; the PDF renderer converts them with one fixed factor.
type PhotoDescriptor struct {
	Src          string `json:"src"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	BorderRadius int    `json:"borderRadius"`
	BorderWidth  int    `json:"borderWidth"`
	BorderColor  string `json:"borderColor"`
	Shadow       bool   `json:"shadow"`
	Grayscale    bool   `json:"grayscale"`
}

// NewPhotoDescriptor computes photo geometry from the resolved theme. It returns
// nil when the theme hides photos or src is empty.
func NewPhotoDescriptor(src string, t theme.Resolved) *PhotoDescriptor {
	if !t.ShowPhoto || src == "" {
		return nil
	}

	base, ok := photoBaseSize[t.PhotoSize]
	if !ok {
		base = photoBaseSize["medium"]
	}
	mult, ok := photoAspectMultiplier[t.PhotoAspect]
	if !ok {
		mult = 1.0
	}

	p := &PhotoDescriptor{
		Src:         src,
		Width:       base,
		Height:      int(math.Round(float64(base) * mult)),
		BorderWidth: t.PhotoBorderWidth,
		BorderColor: t.PhotoBorderColor,
		Shadow:      t.PhotoShadow,
		Grayscale:   t.PhotoGrayscale,
	}
	// Square photos render as circles; other aspects use the theme radius.
	if p.Width == p.Height {
		p.BorderRadius = p.Width / 2
	} else {
		p.BorderRadius = t.Layout.BorderRadius
	}
	return p
}
