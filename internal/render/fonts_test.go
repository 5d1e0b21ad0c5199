package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFontManagerFaces(t *testing.T) {
	fm, err := NewFontManager()
	require.NoError(t, err)

	families := []string{"sans_serif", "serif", "monospace", "cursive", "fantasy", "unknown"}
	weights := []FontWeight{WeightRegular, WeightMedium, WeightSemiBold}
	for _, family := range families {
		for _, weight := range weights {
			face, err := fm.Face(family, weight, 24)
			require.NoError(t, err, "family %s weight %d", family, weight)
			require.NotNil(t, face)
		}
	}
}

func TestFontManagerCachesFaces(t *testing.T) {
	fm, err := NewFontManager()
	require.NoError(t, err)

	a, err := fm.Face("sans_serif", WeightSemiBold, 48)
	require.NoError(t, err)
	b, err := fm.Face("sans_serif", WeightSemiBold, 48)
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "six digit", in: "#990000", want: color.RGBA{R: 0x99, A: 0xff}},
		{name: "three digit", in: "#fff", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{name: "eight digit", in: "#1e293b80", want: color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0x80}},
		{name: "surrounding space", in: "  #475569 ", want: color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff}},
		{name: "missing prefix", in: "990000", wantErr: true},
		{name: "bad length", in: "#99000", wantErr: true},
		{name: "not hex", in: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColorOrBlackFallsBack(t *testing.T) {
	require.Equal(t, color.Black, colorOrBlack("rebeccapurple"))
	require.Equal(t, color.RGBA{R: 0x99, A: 0xff}, colorOrBlack("#990000"))
}
