package domain

import (
	"context"
	"errors"
)

// ErrCertificateNotFound is returned when no certificate matches the lookup key.
// It marks expected absence, distinct from infrastructure failures.
var ErrCertificateNotFound = errors.New("certificate not found")

// Certificate is a finalized record of an issued credential. It is created and
// updated by the issuing organization's back-office; this service only reads it.
// CertificateNumber is the external identifier and, together with
// OrganizationSlug, identifies at most one record. A bare number lookup across
// organizations is ambiguous and deliberately not offered.
type Certificate struct {
	ID                      int64    `json:"id"`
	FullName                string   `json:"fullname"`
	CourseName              string   `json:"coursename"`
	CertificateNumber       string   `json:"certificatenumber"`
	IssueDate               string   `json:"issuedate"`
	Organization            string   `json:"organization,omitempty"`
	OrganizationSlug        string   `json:"organization_slug,omitempty"`
	TemplateID              int64    `json:"template_id,omitempty"`
	Description             string   `json:"description,omitempty"`
	Instructor              string   `json:"instructor,omitempty"`
	Language                string   `json:"language,omitempty"`
	InstructorBio           string   `json:"instructor_bio,omitempty"`
	OrganizationDescription string   `json:"organization_description,omitempty"`
	Duration                string   `json:"duration,omitempty"`
	Skills                  []string `json:"skills,omitempty"`
	Grade                   string   `json:"grade,omitempty"`
	TotalHours              string   `json:"totalHours,omitempty"`
	CourseLogo              string   `json:"course_logo,omitempty"`

	// Per-language labels and texts shown on the verification page. Empty
	// values are filled from the language defaults at read time.
	CertificateTitle       string `json:"certificate_title,omitempty"`
	ProviderText           string `json:"provider_text,omitempty"`
	CompletionText         string `json:"completion_text,omitempty"`
	InstructorLabel        string `json:"instructor_label,omitempty"`
	DateLabel              string `json:"date_label,omitempty"`
	CertificateNumberLabel string `json:"certificate_number_label,omitempty"`
	QRScanText             string `json:"qr_scan_text,omitempty"`
	SkillsLabel            string `json:"skills_label,omitempty"`
	TotalHoursLabel        string `json:"total_hours_label,omitempty"`
	GradeLabel             string `json:"grade_label,omitempty"`
}

// DefaultTexts is the per-language set of generic labels and sentences used
// when a certificate carries no custom ones.
type DefaultTexts struct {
	CertificateTitle       string
	ProviderText           string
	CompletionText         string
	InstructorLabel        string
	DateLabel              string
	CertificateNumberLabel string
	QRScanText             string
	SkillsLabel            string
	TotalHoursLabel        string
	GradeLabel             string
}

var defaultTextsByLanguage = map[string]DefaultTexts{
	"tr": {
		CertificateTitle:       "Başarı Sertifikası",
		ProviderText:           "tarafından sunulan",
		CompletionText:         "Eğitimi videolarını tamamlayarak ve sınavdan geçerli notu alarak bu sertifikayı almaya hak kazanmıştır.",
		InstructorLabel:        "EĞİTMEN/KURUM",
		DateLabel:              "VERİLİŞ TARİHİ",
		CertificateNumberLabel: "SERTİFİKA NO",
		QRScanText:             "Doğrulama için tarayın",
		SkillsLabel:            "Kazanılan Yetenekler",
		TotalHoursLabel:        "Toplam",
		GradeLabel:             "Başarı Notu",
	},
	"en": {
		CertificateTitle:       "Certificate of Achievement",
		ProviderText:           "provided by",
		CompletionText:         "Successfully completed the course requirements and achieved a passing grade, thereby earning this certificate of completion.",
		InstructorLabel:        "INSTRUCTOR/ORGANIZATION",
		DateLabel:              "ISSUE DATE",
		CertificateNumberLabel: "CERTIFICATE NO",
		QRScanText:             "Scan to verify",
		SkillsLabel:            "Skills Acquired",
		TotalHoursLabel:        "Total",
		GradeLabel:             "Grade",
	},
	"global": {
		CertificateTitle:       "Certificate of Completion",
		ProviderText:           "issued by",
		CompletionText:         "Has successfully completed all course modules and assessments and is hereby awarded this certificate.",
		InstructorLabel:        "INSTRUCTOR",
		DateLabel:              "DATE ISSUED",
		CertificateNumberLabel: "CERTIFICATE ID",
		QRScanText:             "Scan to authenticate",
		SkillsLabel:            "Competencies Gained",
		TotalHoursLabel:        "Duration",
		GradeLabel:             "Final Score",
	},
}

// GetDefaultTexts returns the default labels for language, falling back to
// Turkish for unknown or empty tags.
func GetDefaultTexts(language string) DefaultTexts {
	if t, ok := defaultTextsByLanguage[language]; ok {
		return t
	}
	return defaultTextsByLanguage["tr"]
}

// ApplyDefaultTexts fills any unset label/text field on c from the defaults
// for the given language.
func (c *Certificate) ApplyDefaultTexts(language string) {
	t := GetDefaultTexts(language)
	if c.CertificateTitle == "" {
		c.CertificateTitle = t.CertificateTitle
	}
	if c.ProviderText == "" {
		c.ProviderText = t.ProviderText
	}
	if c.CompletionText == "" {
		c.CompletionText = t.CompletionText
	}
	if c.InstructorLabel == "" {
		c.InstructorLabel = t.InstructorLabel
	}
	if c.DateLabel == "" {
		c.DateLabel = t.DateLabel
	}
	if c.CertificateNumberLabel == "" {
		c.CertificateNumberLabel = t.CertificateNumberLabel
	}
	if c.QRScanText == "" {
		c.QRScanText = t.QRScanText
	}
	if c.SkillsLabel == "" {
		c.SkillsLabel = t.SkillsLabel
	}
	if c.TotalHoursLabel == "" {
		c.TotalHoursLabel = t.TotalHoursLabel
	}
	if c.GradeLabel == "" {
		c.GradeLabel = t.GradeLabel
	}
}

// OverrideTexts replaces every label/text field on c with the defaults for
// language, regardless of stored customizations, and updates the language tag.
func (c *Certificate) OverrideTexts(language string) {
	t := GetDefaultTexts(language)
	c.Language = language
	c.CertificateTitle = t.CertificateTitle
	c.ProviderText = t.ProviderText
	c.CompletionText = t.CompletionText
	c.InstructorLabel = t.InstructorLabel
	c.DateLabel = t.DateLabel
	c.CertificateNumberLabel = t.CertificateNumberLabel
	c.QRScanText = t.QRScanText
	c.SkillsLabel = t.SkillsLabel
	c.TotalHoursLabel = t.TotalHoursLabel
	c.GradeLabel = t.GradeLabel
}

// CertificateRepository provides keyed reads of issued certificates.
type CertificateRepository interface {
	// GetByNumber returns the certificate identified by (organizationSlug,
	// certificateNumber), or ErrCertificateNotFound.
	GetByNumber(ctx context.Context, organizationSlug, certificateNumber string) (*Certificate, error)
}

// CertificateService defines the verification read path.
type CertificateService interface {
	Verify(ctx context.Context, organizationSlug, certificateNumber string) (*Certificate, error)
	VerifyWithLanguage(ctx context.Context, organizationSlug, certificateNumber, preferredLanguage string) (*Certificate, error)
}
