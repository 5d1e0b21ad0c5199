package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"uniboard/internal/domain"
)

// CanonicalHeight is the fixed logical canvas height. Every template renders
// at this height with the width derived from the background's aspect ratio,
// which keeps font-size and position percentages comparable across templates
// without ever distorting the background.
const CanonicalHeight = 1200

// Canvas is an in-memory certificate raster, produced fresh on every render
// and owned by the caller.
type Canvas struct {
	Image  image.Image
	Width  int
	Height int
}

// Pipeline turns (certificate, resolved template | none) into a complete
// raster image. It never surfaces a partial result: template absence renders
// the fixed-layout fallback, runtime failures render a visually distinct
// error canvas, and only a broken drawing environment returns an error.
type Pipeline struct {
	templates     domain.TemplateRepository
	images        domain.ImageFetcher
	fonts         *FontManager
	logger        *slog.Logger
	verifyBaseURL string
}

func NewPipeline(templates domain.TemplateRepository, images domain.ImageFetcher, fonts *FontManager, logger *slog.Logger, verifyBaseURL string) *Pipeline {
	return &Pipeline{
		templates:     templates,
		images:        images,
		fonts:         fonts,
		logger:        logger,
		verifyBaseURL: verifyBaseURL,
	}
}

// Render produces the certificate image for cert.
func (p *Pipeline) Render(ctx context.Context, cert *domain.Certificate) (*Canvas, error) {
	res := p.resolveTemplate(ctx, cert)
	switch res.Status {
	case domain.TemplateAbsent:
		p.logger.Debug("no template configured, using fallback",
			"organization", cert.OrganizationSlug, "certificate", cert.CertificateNumber)
		return p.renderFallback(cert)
	case domain.TemplateFailed:
		p.logger.Error("template resolution failed",
			"organization", cert.OrganizationSlug, "certificate", cert.CertificateNumber, "err", res.Err)
		return p.renderErrorCanvas(cert, res.Err)
	}

	canvas, err := p.renderDynamic(ctx, cert, res.Template, res.Settings)
	if err != nil {
		p.logger.Error("dynamic render failed",
			"template", res.Template.Name, "certificate", cert.CertificateNumber, "err", err)
		return p.renderErrorCanvas(cert, err)
	}
	return canvas, nil
}

// resolveTemplate looks up the certificate's template (explicit id when
// named, otherwise the organization default) and normalizes its design
// settings. Absence and decode failure both map to TemplateAbsent; only an
// infrastructure failure maps to TemplateFailed.
func (p *Pipeline) resolveTemplate(ctx context.Context, cert *domain.Certificate) domain.TemplateResolution {
	slug := cert.OrganizationSlug
	if slug == "" {
		slug = "default"
	}

	var (
		tpl *domain.Template
		err error
	)
	if cert.TemplateID != 0 {
		tpl, err = p.templates.GetByID(ctx, slug, cert.TemplateID)
	} else {
		tpl, err = p.templates.GetDefault(ctx, slug)
	}
	if errors.Is(err, domain.ErrTemplateNotFound) {
		return domain.TemplateResolution{Status: domain.TemplateAbsent}
	}
	if err != nil {
		return domain.TemplateResolution{Status: domain.TemplateFailed, Err: err}
	}

	settings, err := domain.ParseDesignSettings(tpl.DesignSettings)
	if err != nil {
		// Fail open: an undecodable payload must never block verification.
		p.logger.Warn("design settings undecodable, treating template as absent",
			"template", tpl.Name, "err", err)
		return domain.TemplateResolution{Status: domain.TemplateAbsent}
	}
	return domain.TemplateResolution{Status: domain.TemplateResolved, Template: tpl, Settings: settings}
}

// slotDraw describes one field slot ready to draw. Slots do not interact, so
// draw order is irrelevant.
type slotDraw struct {
	name   string
	pos    domain.PositionConfig
	text   string
	family string
	weight FontWeight
	size   float64
	color  string
	wrap   bool
}

func (p *Pipeline) renderDynamic(ctx context.Context, cert *domain.Certificate, tpl *domain.Template, settings *domain.DesignSettings) (*Canvas, error) {
	bg, err := p.images.Fetch(ctx, tpl.BackgroundImage)
	if err != nil {
		return nil, fmt.Errorf("load background image: %w", err)
	}

	bounds := bg.Bounds()
	if bounds.Dy() == 0 {
		return nil, fmt.Errorf("background image has zero height")
	}
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())
	width := int(math.Round(CanonicalHeight * aspect))
	height := CanonicalHeight

	dc := gg.NewContext(width, height)
	dc.DrawImage(imaging.Resize(bg, width, height, imaging.Lanczos), 0, 0)

	description := cert.Description
	if description == "" {
		description = cert.CompletionText
	}
	if description == "" {
		description = domain.GetDefaultTexts(cert.Language).CompletionText
	}
	title := cert.CertificateTitle
	if title == "" {
		title = domain.GetDefaultTexts(cert.Language).CertificateTitle
	}

	fonts := settings.Fonts
	colors := settings.Colors
	sizes := settings.FontSizes
	layout := settings.Layout

	slots := []slotDraw{
		{name: "name", pos: layout.Name, text: cert.FullName,
			family: fonts.Name, weight: WeightSemiBold, size: sizes.Name, color: colors.Name},
		{name: "date", pos: layout.Date, text: FormatIssueDate(cert.IssueDate, cert.Language),
			family: fonts.Body, weight: WeightMedium, size: sizes.Date, color: colors.Text},
		{name: "title", pos: layout.Title, text: title,
			family: fonts.Title, weight: WeightSemiBold, size: sizes.Title, color: colors.Primary},
		{name: "institution", pos: layout.Institution, text: cert.Organization,
			family: fonts.Body, weight: WeightMedium, size: sizes.Institution, color: colors.Institution},
		{name: "certificate_no", pos: layout.CertificateNo, text: cert.CertificateNumber,
			family: fonts.Body, weight: WeightRegular, size: sizes.CertificateNo, color: colors.CertificateNo},
		{name: "description", pos: layout.Description, text: description,
			family: fonts.Body, weight: WeightRegular, size: sizeOr(sizes.Description, sizes.Institution),
			color: colors.Text, wrap: true},
		{name: "course_name", pos: layout.CourseName, text: cert.CourseName,
			family: fonts.Title, weight: WeightSemiBold, size: sizeOr(sizes.CourseName, sizes.Title), color: colors.Text},
		{name: "signature", pos: layout.Signature, text: cert.Instructor,
			family: fonts.Body, weight: WeightSemiBold, size: sizes.Signature, color: colors.Secondary},
	}

	for _, slot := range slots {
		if !slot.pos.Enabled {
			continue
		}
		if slot.text == "" {
			// Enabled slot with no data: drawing an empty string would be a
			// silent no-op, so skip explicitly.
			p.logger.Debug("skipping slot with empty value", "slot", slot.name, "certificate", cert.CertificateNumber)
			continue
		}
		if err := p.drawSlot(dc, slot, width, height); err != nil {
			return nil, fmt.Errorf("draw %s slot: %w", slot.name, err)
		}
	}

	return &Canvas{Image: dc.Image(), Width: width, Height: height}, nil
}

// drawSlot draws one enabled slot: fill color from its color role, face from
// its font role and weight, horizontal anchor from align, vertical baseline
// centered on the computed y.
func (p *Pipeline) drawSlot(dc *gg.Context, slot slotDraw, canvasWidth, canvasHeight int) error {
	face, err := p.fonts.Face(slot.family, slot.weight, slot.size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(colorOrBlack(slot.color))

	x, y := PixelPosition(slot.pos, canvasWidth, canvasHeight)
	ax := anchorX(slot.pos.Align)

	if !slot.wrap {
		dc.DrawStringAnchored(slot.text, x, y, ax, 0.5)
		return nil
	}

	maxWidth := float64(canvasWidth) * 0.6
	lineHeight := slot.size * 1.2
	for i, line := range WrapText(dc, slot.text, maxWidth) {
		dc.DrawStringAnchored(line, x, y+float64(i)*lineHeight, ax, 0.5)
	}
	return nil
}

// sizeOr returns the primary font size, or the fallback when unset.
func sizeOr(primary, fallback float64) float64 {
	if primary > 0 {
		return primary
	}
	return fallback
}
