package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrTemplateNotFound is returned when no template matches the lookup key.
// Absence of a template is an expected state, not a failure: the renderer
// routes it to the fixed-layout fallback.
var ErrTemplateNotFound = errors.New("certificate template not found")

// Template is a named, organization-scoped visual certificate design.
// DesignSettings may arrive either as a JSON-encoded string or as an
// already-decoded object depending on which write path produced the row;
// ParseDesignSettings accepts both.
type Template struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	BackgroundImage  string          `json:"background_image"`
	OrganizationSlug string          `json:"organization_slug"`
	IsDefault        bool            `json:"is_default"`
	DesignSettings   json.RawMessage `json:"design_settings"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Align is a horizontal text alignment: left, center or right.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// PositionConfig places one field slot on the canvas. X and Y are percentages
// of canvas width/height (0-100). XManual and YManual are pixel overrides
// reserved for the drag-and-drop authoring surface; the render path never
// reads them.
type PositionConfig struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Align   Align   `json:"align"`
	Enabled bool    `json:"enabled"`
	XManual float64 `json:"x_manual"`
	YManual float64 `json:"y_manual"`
}

// FontRoles maps named font roles to generic font-family classes:
// sans_serif, serif, monospace, cursive or fantasy.
type FontRoles struct {
	Body  string `json:"body"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ColorRoles maps named color roles to CSS-style color values.
type ColorRoles struct {
	Name          string `json:"name"`
	Text          string `json:"text"`
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Institution   string `json:"institution"`
	CertificateNo string `json:"certificate_no"`
}

// LayoutConfig holds one PositionConfig per field slot. A slot missing from
// the payload decodes to the zero PositionConfig, i.e. disabled.
type LayoutConfig struct {
	Name          PositionConfig `json:"name_position"`
	Date          PositionConfig `json:"date_position"`
	Title         PositionConfig `json:"title_position"`
	Institution   PositionConfig `json:"institution_position"`
	CertificateNo PositionConfig `json:"certificate_no_position"`
	Description   PositionConfig `json:"description_position"`
	CourseName    PositionConfig `json:"course_name_position"`
	Signature     PositionConfig `json:"signature_position"`
}

// FontSizes holds per-slot pixel font sizes.
type FontSizes struct {
	Name          float64 `json:"name"`
	Date          float64 `json:"date"`
	Title         float64 `json:"title"`
	Institution   float64 `json:"institution"`
	CertificateNo float64 `json:"certificate_no"`
	Description   float64 `json:"description"`
	CourseName    float64 `json:"course_name"`
	Signature     float64 `json:"signature"`
}

// DesignSettings is the decoded template payload: fonts, colors, per-slot
// layout and font sizes. All downstream rendering code assumes this single
// canonical shape.
type DesignSettings struct {
	Fonts     FontRoles    `json:"fonts"`
	Colors    ColorRoles   `json:"colors"`
	Layout    LayoutConfig `json:"layout"`
	FontSizes FontSizes    `json:"font_sizes"`
}

// ParseDesignSettings normalizes a design_settings payload into a typed
// structure. The payload may be a JSON object or a JSON string containing an
// encoded object; both decode to the same result. Called once at pipeline
// entry so the rest of the renderer never sees the dual encoding.
func ParseDesignSettings(raw json.RawMessage) (*DesignSettings, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("design settings payload is empty")
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("decode design settings string: %w", err)
		}
		trimmed = []byte(inner)
	}

	var settings DesignSettings
	if err := json.Unmarshal(trimmed, &settings); err != nil {
		return nil, fmt.Errorf("decode design settings: %w", err)
	}
	return &settings, nil
}

// ResolutionStatus classifies the outcome of a template lookup.
type ResolutionStatus int

const (
	// TemplateResolved means a template and its decoded settings are available.
	TemplateResolved ResolutionStatus = iota
	// TemplateAbsent means no template is configured (or its settings could
	// not be decoded); the fixed-layout fallback should render instead.
	TemplateAbsent
	// TemplateFailed means the lookup itself failed; the error canvas should
	// render so operators can tell failures from configuration gaps.
	TemplateFailed
)

// TemplateResolution is the explicit three-way result of resolving a
// certificate's template, keeping the absence/failure distinction visible in
// signatures instead of buried in error identity.
type TemplateResolution struct {
	Status   ResolutionStatus
	Template *Template
	Settings *DesignSettings
	Err      error
}

// TemplateRepository provides keyed reads of certificate templates.
type TemplateRepository interface {
	// GetByID returns the organization's template with the given id, or
	// ErrTemplateNotFound.
	GetByID(ctx context.Context, organizationSlug string, id int64) (*Template, error)
	// GetDefault returns the organization's template marked is_default, or
	// ErrTemplateNotFound.
	GetDefault(ctx context.Context, organizationSlug string) (*Template, error)
}
