package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoRequestData struct {
	Name         string
	Email        string
	Organization string
	Phone        string
	Country      string
	Message      string
	SubmissionID string
	SubmittedAt  string
}

func TestRenderDemoRequestConfirmation(t *testing.T) {
	r := NewTemplateRenderer()

	subject, htmlBody, textBody, err := r.Render("demo_request_confirmation", demoRequestData{
		Name:         "Ayşe Yılmaz",
		Email:        "ayse@example.com",
		SubmissionID: "DEMO_1726000000000_000042",
		SubmittedAt:  "01.09.2026 14:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "Demo Talebiniz Alındı - Uniboard", subject)
	assert.Contains(t, htmlBody, "Sayın Ayşe Yılmaz")
	assert.Contains(t, htmlBody, "DEMO_1726000000000_000042")
	assert.Contains(t, textBody, "ayse@example.com")
}

func TestRenderDemoRequestAdminFillsUnsetFields(t *testing.T) {
	r := NewTemplateRenderer()

	subject, htmlBody, textBody, err := r.Render("demo_request_admin", demoRequestData{
		Name:         "Mehmet Demir",
		Email:        "mehmet@example.com",
		Organization: "ABC Akademi",
		SubmissionID: "DEMO_1726000000000_000043",
		SubmittedAt:  "01.09.2026 14:31",
	})
	require.NoError(t, err)

	assert.Equal(t, "Yeni Demo Talebi - Mehmet Demir", subject)
	assert.Contains(t, htmlBody, "ABC Akademi")
	assert.Contains(t, htmlBody, "Belirtilmemiş", "unset phone renders as placeholder")
	assert.Contains(t, textBody, "Telefon: Belirtilmemiş")
}

func TestRenderEscapesHTMLInApplicantInput(t *testing.T) {
	r := NewTemplateRenderer()

	_, htmlBody, textBody, err := r.Render("demo_request_admin", demoRequestData{
		Name:         "x",
		Email:        "x@example.com",
		Message:      "<script>alert(1)</script>",
		SubmissionID: "DEMO_1",
		SubmittedAt:  "01.09.2026 14:32",
	})
	require.NoError(t, err)

	assert.NotContains(t, htmlBody, "<script>")
	assert.Contains(t, textBody, "<script>", "text body is not HTML escaped")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("no_such_template", nil)
	require.Error(t, err)
}
