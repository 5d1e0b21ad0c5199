package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"uniboard/internal/delivery/http/helpers"
	"uniboard/internal/domain"
	"uniboard/internal/render"
)

// Renderer produces a certificate canvas from verified certificate data.
type Renderer interface {
	Render(ctx context.Context, cert *domain.Certificate) (*render.Canvas, error)
}

type CertificateController struct {
	Logger   *slog.Logger
	Service  domain.CertificateService
	Renderer Renderer
}

func NewCertificateController(logger *slog.Logger, svc domain.CertificateService, renderer Renderer) *CertificateController {
	return &CertificateController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
	}
}

// Verify godoc
// @Summary Verify a certificate
// @Description Look up a certificate by organization slug and certificate number. Unset labels and texts are filled from the defaults for the certificate's language, or for ?lang= when given.
// @Tags certificates
// @Produce json
// @Param organization path string true "Organization slug"
// @Param certificatenumber path string true "Certificate number"
// @Param lang query string false "Preferred display language (tr, en, global)"
// @Success 200 {object} helpers.APIResponse{data=domain.Certificate}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /{organization}/certificates/{certificatenumber} [get]
func (c *CertificateController) Verify(w http.ResponseWriter, r *http.Request) {
	organization := r.PathValue("organization")
	number := r.PathValue("certificatenumber")
	lang := r.URL.Query().Get("lang")

	cert, err := c.Service.VerifyWithLanguage(r.Context(), organization, number, lang)
	if err != nil {
		if errors.Is(err, domain.ErrCertificateNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "certificate not found")
			return
		}
		c.Logger.Error("certificate verification failed", "organization", organization, "number", number, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to verify certificate")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cert)
}

// Image godoc
// @Summary Render a certificate image
// @Description Render the certificate as PNG, JPEG or PDF. A missing or undecodable template falls back to a built-in design; the endpoint only fails when the certificate itself does not exist.
// @Tags certificates
// @Produce png
// @Param organization path string true "Organization slug"
// @Param certificatenumber path string true "Certificate number"
// @Param format query string false "Output format: png (default), jpeg or pdf"
// @Param lang query string false "Preferred display language (tr, en, global)"
// @Success 200 {file} file
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /{organization}/certificates/{certificatenumber}/image [get]
func (c *CertificateController) Image(w http.ResponseWriter, r *http.Request) {
	organization := r.PathValue("organization")
	number := r.PathValue("certificatenumber")
	lang := r.URL.Query().Get("lang")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	switch format {
	case "png", "jpeg", "pdf":
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
			fmt.Sprintf("unsupported format %q, expected png, jpeg or pdf", format))
		return
	}

	cert, err := c.Service.VerifyWithLanguage(r.Context(), organization, number, lang)
	if err != nil {
		if errors.Is(err, domain.ErrCertificateNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "certificate not found")
			return
		}
		c.Logger.Error("certificate lookup failed", "organization", organization, "number", number, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to verify certificate")
		return
	}

	canvas, err := c.Renderer.Render(r.Context(), cert)
	if err != nil {
		c.Logger.Error("certificate rendering failed", "organization", organization, "number", number, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to render certificate")
		return
	}

	filename := fmt.Sprintf("certificate-%s.%s", cert.CertificateNumber, format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))

	switch format {
	case "png":
		w.Header().Set("Content-Type", "image/png")
		err = canvas.EncodePNG(w)
	case "jpeg":
		w.Header().Set("Content-Type", "image/jpeg")
		err = canvas.EncodeJPEG(w)
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		err = canvas.EncodePDF(w)
	}
	if err != nil {
		// Headers are already sent, so only log.
		c.Logger.Error("certificate encoding failed", "format", format, "number", number, "err", err)
	}
}
