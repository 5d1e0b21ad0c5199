package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
)

// FontWeight mirrors the CSS numeric weight convention used by templates.
type FontWeight int

const (
	WeightRegular  FontWeight = 400
	WeightMedium   FontWeight = 500
	WeightSemiBold FontWeight = 600
)

const fontDPI = 72

// FontManager maps generic font-family classes (sans_serif, serif, monospace,
// cursive, fantasy) and weights onto embedded Go font faces, caching both
// parsed fonts and sized faces. The Go family carries no true serif; the
// serif class resolves to the proportional Go faces.
type FontManager struct {
	mu     sync.Mutex
	parsed map[string]*opentype.Font
	faces  map[faceKey]font.Face
}

type faceKey struct {
	family string
	weight FontWeight
	size   float64
}

// NewFontManager parses the default face eagerly so a broken font environment
// surfaces at startup rather than mid-render.
func NewFontManager() (*FontManager, error) {
	fm := &FontManager{
		parsed: make(map[string]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
	}
	if _, err := fm.parsedFont("sans_serif", WeightRegular); err != nil {
		return nil, fmt.Errorf("initialize font manager: %w", err)
	}
	return fm, nil
}

// Face returns a cached font.Face for the given family class, weight and
// pixel size. Unknown family classes resolve to sans_serif.
func (fm *FontManager) Face(family string, weight FontWeight, size float64) (font.Face, error) {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	key := faceKey{family: family, weight: weight, size: size}
	if face, ok := fm.faces[key]; ok {
		return face, nil
	}

	parsed, err := fm.parsedFontLocked(family, weight)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s face at %.0fpx: %w", family, size, err)
	}
	fm.faces[key] = face
	return face, nil
}

func (fm *FontManager) parsedFont(family string, weight FontWeight) (*opentype.Font, error) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return fm.parsedFontLocked(family, weight)
}

func (fm *FontManager) parsedFontLocked(family string, weight FontWeight) (*opentype.Font, error) {
	data := ttfFor(family, weight)
	cacheKey := fmt.Sprintf("%s/%d", family, weight)
	if f, ok := fm.parsed[cacheKey]; ok {
		return f, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s font: %w", family, err)
	}
	fm.parsed[cacheKey] = f
	return f, nil
}

// ttfFor selects the embedded Go font variant for a family class and weight.
func ttfFor(family string, weight FontWeight) []byte {
	switch family {
	case "monospace":
		if weight >= WeightSemiBold {
			return gomonobold.TTF
		}
		return gomono.TTF
	case "cursive":
		switch {
		case weight >= WeightSemiBold:
			return gobolditalic.TTF
		case weight >= WeightMedium:
			return gomediumitalic.TTF
		default:
			return goitalic.TTF
		}
	case "fantasy":
		return gosmallcaps.TTF
	default: // sans_serif, serif and anything unrecognized
		switch {
		case weight >= WeightSemiBold:
			return gobold.TTF
		case weight >= WeightMedium:
			return gomedium.TTF
		default:
			return goregular.TTF
		}
	}
}
