package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, c.Image, imaging.PNG)
}

// EncodeJPEG writes the canvas as JPEG.
func (c *Canvas) EncodeJPEG(w io.Writer) error {
	return imaging.Encode(w, c.Image, imaging.JPEG, imaging.JPEGQuality(90))
}

// EncodePDF writes a single-page PDF whose page matches the canvas pixel
// dimensions exactly (1px = 1pt), landscape iff width > height.
func (c *Canvas) EncodePDF(w io.Writer) error {
	orientation := "P"
	if c.Width > c.Height {
		orientation = "L"
	}
	// gofpdf swaps a custom size for landscape, so the size is always given
	// portrait-first.
	shortSide := float64(min(c.Width, c.Height))
	longSide := float64(max(c.Width, c.Height))

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: shortSide, Ht: longSide},
	})
	pdf.AddPage()

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode canvas for PDF: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("certificate", opts, &buf)
	pdf.ImageOptions("certificate", 0, 0, float64(c.Width), float64(c.Height), false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write PDF: %w", err)
	}
	return nil
}
