package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"uniboard/internal/domain"
)

type templateRepository struct {
	DB *sql.DB
}

func NewTemplateRepository(db *sql.DB) domain.TemplateRepository {
	return &templateRepository{DB: db}
}

const templateColumns = `
	SELECT id, name, COALESCE(description, ''), background_image,
	       organization_slug, is_default, COALESCE(design_settings, 'null'),
	       created_at, updated_at
	FROM certificate_templates
`

// GetByID returns the organization's template with the given id, or
// domain.ErrTemplateNotFound. Absence is an expected state for the render
// pipeline, not an error condition.
func (r *templateRepository) GetByID(ctx context.Context, organizationSlug string, id int64) (*domain.Template, error) {
	query := templateColumns + `WHERE organization_slug = $1 AND id = $2`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, organizationSlug, id))
}

// GetDefault returns the organization's template marked is_default, or
// domain.ErrTemplateNotFound.
func (r *templateRepository) GetDefault(ctx context.Context, organizationSlug string) (*domain.Template, error) {
	query := templateColumns + `WHERE organization_slug = $1 AND is_default = true`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, organizationSlug))
}

func (r *templateRepository) scanOne(row *sql.Row) (*domain.Template, error) {
	t := &domain.Template{}
	var settings []byte
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.BackgroundImage,
		&t.OrganizationSlug, &t.IsDefault, &settings,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query certificate template: %w", err)
	}
	t.DesignSettings = settings
	return t, nil
}
