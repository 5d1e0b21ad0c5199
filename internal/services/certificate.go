package services

import (
	"context"
	"fmt"
	"log/slog"

	"uniboard/internal/domain"
)

type certificateService struct {
	repo   domain.CertificateRepository
	logger *slog.Logger
}

// NewCertificateService returns the verification read path over the given repository.
func NewCertificateService(repo domain.CertificateRepository, logger *slog.Logger) domain.CertificateService {
	return &certificateService{repo: repo, logger: logger}
}

// Verify loads the certificate identified by (organizationSlug,
// certificateNumber) and fills unset labels and texts from the defaults for
// its language tag.
func (s *certificateService) Verify(ctx context.Context, organizationSlug, certificateNumber string) (*domain.Certificate, error) {
	cert, err := s.repo.GetByNumber(ctx, organizationSlug, certificateNumber)
	if err != nil {
		return nil, fmt.Errorf("verify certificate %s/%s: %w", organizationSlug, certificateNumber, err)
	}
	if cert.Language == "" {
		cert.Language = "tr"
	}
	cert.ApplyDefaultTexts(cert.Language)
	return cert, nil
}

// VerifyWithLanguage behaves like Verify but, when preferredLanguage is set
// and differs from the certificate's own language, replaces all labels and
// texts with that language's defaults.
func (s *certificateService) VerifyWithLanguage(ctx context.Context, organizationSlug, certificateNumber, preferredLanguage string) (*domain.Certificate, error) {
	cert, err := s.Verify(ctx, organizationSlug, certificateNumber)
	if err != nil {
		return nil, err
	}
	if preferredLanguage != "" && preferredLanguage != cert.Language {
		cert.OverrideTexts(preferredLanguage)
	}
	return cert, nil
}
