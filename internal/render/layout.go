package render

import (
	"math"
	"strings"

	"github.com/fogleman/gg"

	"uniboard/internal/domain"
)

// PixelPosition converts a percentage-based position descriptor into absolute
// pixel coordinates on a canvas. Percentage space, not the manual pixel
// overrides, is the render-time source of truth.
func PixelPosition(cfg domain.PositionConfig, canvasWidth, canvasHeight int) (x, y float64) {
	x = math.Round(cfg.X / 100 * float64(canvasWidth))
	y = math.Round(cfg.Y / 100 * float64(canvasHeight))
	return x, y
}

// anchorX maps a horizontal alignment onto a gg anchor fraction.
func anchorX(a domain.Align) float64 {
	switch a {
	case domain.AlignCenter:
		return 0.5
	case domain.AlignRight:
		return 1
	default:
		return 0
	}
}

// WrapText greedily packs words into lines whose measured width (with the
// context's active font) does not exceed maxWidth. A single word longer than
// maxWidth occupies its own line rather than being broken mid-word.
func WrapText(dc *gg.Context, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		test := current + " " + word
		if w, _ := dc.MeasureString(test); w > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	return append(lines, current)
}
