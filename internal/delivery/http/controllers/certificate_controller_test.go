package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"uniboard/internal/delivery/http/helpers"
	"uniboard/internal/domain"
	"uniboard/internal/render"
)

type mockCertificateService struct {
	cert *domain.Certificate
	err  error

	gotSlug   string
	gotNumber string
	gotLang   string
}

func (m *mockCertificateService) Verify(ctx context.Context, slug, number string) (*domain.Certificate, error) {
	return m.VerifyWithLanguage(ctx, slug, number, "")
}

func (m *mockCertificateService) VerifyWithLanguage(_ context.Context, slug, number, lang string) (*domain.Certificate, error) {
	m.gotSlug = slug
	m.gotNumber = number
	m.gotLang = lang
	if m.err != nil {
		return nil, m.err
	}
	return m.cert, nil
}

type mockRenderer struct {
	err error
}

func (m *mockRenderer) Render(_ context.Context, _ *domain.Certificate) (*render.Canvas, error) {
	if m.err != nil {
		return nil, m.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	return &render.Canvas{Image: img, Width: 4, Height: 3}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func verifyRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.SetPathValue("organization", "abc-academy")
	req.SetPathValue("certificatenumber", "ABC-2024-001")
	return req
}

func TestCertificateController_Verify_Success(t *testing.T) {
	svc := &mockCertificateService{cert: &domain.Certificate{
		FullName:          "Ayşe Yılmaz",
		CertificateNumber: "ABC-2024-001",
		Language:          "tr",
	}}
	ctrl := NewCertificateController(testLogger(), svc, &mockRenderer{})

	w := httptest.NewRecorder()
	ctrl.Verify(w, verifyRequest("/abc-academy/certificates/ABC-2024-001?lang=en"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.gotSlug != "abc-academy" || svc.gotNumber != "ABC-2024-001" || svc.gotLang != "en" {
		t.Fatalf("service called with %q %q %q", svc.gotSlug, svc.gotNumber, svc.gotLang)
	}

	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", resp.Data)
	}
	if data["fullname"] != "Ayşe Yılmaz" {
		t.Fatalf("expected fullname in payload, got %v", data["fullname"])
	}
}

func TestCertificateController_Verify_NotFound(t *testing.T) {
	svc := &mockCertificateService{err: domain.ErrCertificateNotFound}
	ctrl := NewCertificateController(testLogger(), svc, &mockRenderer{})

	w := httptest.NewRecorder()
	ctrl.Verify(w, verifyRequest("/abc-academy/certificates/ABC-2024-001"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeNotFound {
		t.Fatalf("expected not_found error, got %v", resp.Error)
	}
}

func TestCertificateController_Verify_ServiceError(t *testing.T) {
	svc := &mockCertificateService{err: errors.New("db down")}
	ctrl := NewCertificateController(testLogger(), svc, &mockRenderer{})

	w := httptest.NewRecorder()
	ctrl.Verify(w, verifyRequest("/abc-academy/certificates/ABC-2024-001"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestCertificateController_Image_PNG(t *testing.T) {
	svc := &mockCertificateService{cert: &domain.Certificate{CertificateNumber: "ABC-2024-001"}}
	ctrl := NewCertificateController(testLogger(), svc, &mockRenderer{})

	w := httptest.NewRecorder()
	ctrl.Image(w, verifyRequest("/abc-academy/certificates/ABC-2024-001/image"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("body is not a PNG")
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `inline; filename="certificate-ABC-2024-001.png"` {
		t.Fatalf("unexpected Content-Disposition %q", cd)
	}
}

func TestCertificateController_Image_PDF(t *testing.T) {
	svc := &mockCertificateService{cert: &domain.Certificate{CertificateNumber: "ABC-2024-001"}}
	ctrl := NewCertificateController(testLogger(), svc, &mockRenderer{})

	w := httptest.NewRecorder()
	ctrl.Image(w, verifyRequest("/abc-academy/certificates/ABC-2024-001/image?format=pdf"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a PDF")
	}
}

func TestCertificateController_Image_UnsupportedFormat(t *testing.T) {
	svc := &mockCertificateService{cert: &domain.Certificate{CertificateNumber: "ABC-2024-001"}}
	ctrl := NewCertificateController(testLogger(), svc, &mockRenderer{})

	w := httptest.NewRecorder()
	ctrl.Image(w, verifyRequest("/abc-academy/certificates/ABC-2024-001/image?format=gif"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if svc.gotNumber != "" {
		t.Fatalf("service should not be called for an unsupported format")
	}
}

func TestCertificateController_Image_NotFound(t *testing.T) {
	svc := &mockCertificateService{err: domain.ErrCertificateNotFound}
	ctrl := NewCertificateController(testLogger(), svc, &mockRenderer{})

	w := httptest.NewRecorder()
	ctrl.Image(w, verifyRequest("/abc-academy/certificates/ABC-2024-001/image"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestCertificateController_Image_RenderError(t *testing.T) {
	svc := &mockCertificateService{cert: &domain.Certificate{CertificateNumber: "ABC-2024-001"}}
	ctrl := NewCertificateController(testLogger(), svc, &mockRenderer{err: errors.New("font missing")})

	w := httptest.NewRecorder()
	ctrl.Image(w, verifyRequest("/abc-academy/certificates/ABC-2024-001/image"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
