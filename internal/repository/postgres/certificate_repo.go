package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"uniboard/internal/domain"
)

type certificateRepository struct {
	DB *sql.DB
}

func NewCertificateRepository(db *sql.DB) domain.CertificateRepository {
	return &certificateRepository{DB: db}
}

// GetByNumber returns the certificate identified by (organization_slug,
// certificatenumber). Not-found maps to domain.ErrCertificateNotFound so
// callers can route expected absence separately from infrastructure failures.
func (r *certificateRepository) GetByNumber(ctx context.Context, organizationSlug, certificateNumber string) (*domain.Certificate, error) {
	query := `
		SELECT id, fullname, coursename, certificatenumber, issuedate,
		       COALESCE(organization, ''), organization_slug, COALESCE(template_id, 0),
		       COALESCE(description, ''), COALESCE(instructor, ''), COALESCE(language, ''),
		       COALESCE(instructor_bio, ''), COALESCE(organization_description, ''),
		       COALESCE(duration, ''), COALESCE(skills, '{}'), COALESCE(grade, ''),
		       COALESCE(total_hours, ''), COALESCE(course_logo, ''),
		       COALESCE(certificate_title, ''), COALESCE(provider_text, ''),
		       COALESCE(completion_text, ''), COALESCE(instructor_label, ''),
		       COALESCE(date_label, ''), COALESCE(certificate_number_label, ''),
		       COALESCE(qr_scan_text, ''), COALESCE(skills_label, ''),
		       COALESCE(total_hours_label, ''), COALESCE(grade_label, '')
		FROM certificates
		WHERE organization_slug = $1 AND certificatenumber = $2
	`
	c := &domain.Certificate{}
	err := r.DB.QueryRowContext(ctx, query, organizationSlug, certificateNumber).Scan(
		&c.ID, &c.FullName, &c.CourseName, &c.CertificateNumber, &c.IssueDate,
		&c.Organization, &c.OrganizationSlug, &c.TemplateID,
		&c.Description, &c.Instructor, &c.Language,
		&c.InstructorBio, &c.OrganizationDescription,
		&c.Duration, pq.Array(&c.Skills), &c.Grade,
		&c.TotalHours, &c.CourseLogo,
		&c.CertificateTitle, &c.ProviderText,
		&c.CompletionText, &c.InstructorLabel,
		&c.DateLabel, &c.CertificateNumberLabel,
		&c.QRScanText, &c.SkillsLabel,
		&c.TotalHoursLabel, &c.GradeLabel,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCertificateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query certificate %s/%s: %w", organizationSlug, certificateNumber, err)
	}
	return c, nil
}
