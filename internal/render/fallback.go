package render

import (
	"fmt"

	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"

	"uniboard/internal/domain"
)

// Fixed geometry for the template-less certificate. These constants are the
// whole layout: the fallback never consults the resolver or design settings.
const (
	fallbackWidth  = 1700
	fallbackHeight = 1200
)

type fallbackStrings struct {
	subtitle     string
	datePrefix   string
	numberPrefix string
	footer       string
}

func fallbackStringsFor(language string) fallbackStrings {
	switch language {
	case "en", "global":
		return fallbackStrings{
			subtitle:     "This certificate is presented to",
			datePrefix:   "Issue Date",
			numberPrefix: "Certificate No",
			footer:       "This certificate was generated electronically",
		}
	default:
		return fallbackStrings{
			subtitle:     "Bu sertifika aşağıdaki kişiye verilmiştir",
			datePrefix:   "Veriliş Tarihi",
			numberPrefix: "Sertifika No",
			footer:       "Bu sertifika elektronik olarak oluşturulmuştur",
		}
	}
}

// renderFallback produces the complete fixed-layout certificate used when no
// template is configured. It must succeed whenever fonts are available; it is
// the guarantee that every certificate number verifies to something
// presentable.
func (p *Pipeline) renderFallback(cert *domain.Certificate) (*Canvas, error) {
	dc := gg.NewContext(fallbackWidth, fallbackHeight)
	w := float64(fallbackWidth)
	h := float64(fallbackHeight)

	texts := domain.GetDefaultTexts(cert.Language)
	strs := fallbackStringsFor(cert.Language)

	// Soft vertical gradient background.
	grad := gg.NewLinearGradient(0, 0, 0, h)
	grad.AddColorStop(0, colorOrBlack("#f8fafc"))
	grad.AddColorStop(1, colorOrBlack("#e2e8f0"))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// Double decorative frame.
	dc.SetColor(colorOrBlack("#990000"))
	dc.SetLineWidth(8)
	dc.DrawRectangle(40, 40, w-80, h-80)
	dc.Stroke()
	dc.SetColor(colorOrBlack("#cbd5e1"))
	dc.SetLineWidth(2)
	dc.DrawRectangle(60, 60, w-120, h-120)
	dc.Stroke()

	// Placeholder institution mark.
	dc.SetColor(colorOrBlack("#990000"))
	dc.DrawRectangle(w/2-100, 80, 200, 80)
	dc.Fill()
	if err := p.drawCentered(dc, "LOGO", w/2, 125, "sans_serif", WeightSemiBold, 24, "#ffffff"); err != nil {
		return nil, err
	}

	title := cert.CertificateTitle
	if title == "" {
		title = texts.CertificateTitle
	}
	if err := p.drawCentered(dc, title, w/2, 250, "sans_serif", WeightSemiBold, 56, "#990000"); err != nil {
		return nil, err
	}
	if err := p.drawCentered(dc, strs.subtitle, w/2, 300, "sans_serif", WeightRegular, 24, "#64748b"); err != nil {
		return nil, err
	}

	// Holder name is the dominant element, underlined at its measured width.
	if err := p.drawCentered(dc, cert.FullName, w/2, 420, "sans_serif", WeightSemiBold, 72, "#1e293b"); err != nil {
		return nil, err
	}
	nameWidth, _ := dc.MeasureString(cert.FullName)
	dc.SetColor(colorOrBlack("#990000"))
	dc.SetLineWidth(3)
	dc.DrawLine(w/2-nameWidth/2-20, 450, w/2+nameWidth/2+20, 450)
	dc.Stroke()

	if err := p.drawCentered(dc, cert.CourseName, w/2, 520, "sans_serif", WeightSemiBold, 32, "#475569"); err != nil {
		return nil, err
	}

	dateLine := fmt.Sprintf("%s: %s", strs.datePrefix, FormatIssueDate(cert.IssueDate, cert.Language))
	if err := p.drawCentered(dc, dateLine, w/2, 600, "sans_serif", WeightMedium, 28, "#64748b"); err != nil {
		return nil, err
	}

	numberLine := fmt.Sprintf("%s: %s", strs.numberPrefix, cert.CertificateNumber)
	if err := p.drawCentered(dc, numberLine, w/2, 680, "sans_serif", WeightMedium, 20, "#94a3b8"); err != nil {
		return nil, err
	}

	if err := p.drawCentered(dc, strs.footer, w/2, 750, "sans_serif", WeightRegular, 18, "#64748b"); err != nil {
		return nil, err
	}

	// Corner ornament.
	dc.SetColor(colorOrBlack("#f1f5f9"))
	dc.DrawCircle(w-100, h-100, 60)
	dc.Fill()
	dc.SetColor(colorOrBlack("#cbd5e1"))
	dc.SetLineWidth(2)
	dc.DrawCircle(w-100, h-100, 60)
	dc.Stroke()

	if p.verifyBaseURL != "" {
		if err := p.drawVerificationQR(dc, cert, texts.QRScanText); err != nil {
			// The QR is an extra; a generation failure must not cost the
			// holder their certificate image.
			p.logger.Warn("verification QR skipped", "certificate", cert.CertificateNumber, "err", err)
		}
	}

	return &Canvas{Image: dc.Image(), Width: fallbackWidth, Height: fallbackHeight}, nil
}

// renderErrorCanvas produces the visually distinct canvas used when a
// configured template fails at runtime. The message carries the error text so
// operators can diagnose from a screenshot; it is deliberately different from
// the no-template fallback so configuration gaps and failures stay
// distinguishable.
func (p *Pipeline) renderErrorCanvas(cert *domain.Certificate, cause error) (*Canvas, error) {
	dc := gg.NewContext(fallbackWidth, fallbackHeight)
	w := float64(fallbackWidth)
	h := float64(fallbackHeight)

	dc.SetColor(colorOrBlack("#ffffff"))
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetColor(colorOrBlack("#990000"))
	dc.SetLineWidth(5)
	dc.DrawRectangle(50, 50, w-100, h-100)
	dc.Stroke()

	headline := "Sertifika Şablonu Yüklenemedi"
	if cert.Language == "en" || cert.Language == "global" {
		headline = "Certificate Template Failed to Load"
	}
	if err := p.drawCentered(dc, headline, w/2, h/2-40, "sans_serif", WeightSemiBold, 48, "#990000"); err != nil {
		return nil, err
	}
	detail := "unknown error"
	if cause != nil {
		detail = cause.Error()
	}
	if err := p.drawCentered(dc, detail, w/2, h/2+40, "sans_serif", WeightRegular, 24, "#ff0000"); err != nil {
		return nil, err
	}
	return &Canvas{Image: dc.Image(), Width: fallbackWidth, Height: fallbackHeight}, nil
}

func (p *Pipeline) drawCentered(dc *gg.Context, text string, x, y float64, family string, weight FontWeight, size float64, hexColor string) error {
	face, err := p.fonts.Face(family, weight, size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(colorOrBlack(hexColor))
	dc.DrawStringAnchored(text, x, y, 0.5, 0)
	return nil
}

// drawVerificationQR draws a QR code of the public verification URL with its
// localized caption in the lower-left.
func (p *Pipeline) drawVerificationQR(dc *gg.Context, cert *domain.Certificate, caption string) error {
	url := fmt.Sprintf("%s/%s/%s", p.verifyBaseURL, cert.OrganizationSlug, cert.CertificateNumber)
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("generate QR: %w", err)
	}
	const qrSize = 140
	x := 100
	y := fallbackHeight - 100 - qrSize
	dc.DrawImage(qr.Image(qrSize), x, y)
	return p.drawCentered(dc, caption, float64(x+qrSize/2), float64(fallbackHeight-80), "sans_serif", WeightRegular, 16, "#64748b")
}
