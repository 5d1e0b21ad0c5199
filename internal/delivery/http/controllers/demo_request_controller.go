package controllers

import (
	"log/slog"
	"net/http"
	"regexp"

	"uniboard/internal/delivery/http/helpers"
	"uniboard/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// DemoRequestBody is the request body for POST /demo-request.
type DemoRequestBody struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
	Country      string `json:"country"`
	Message      string `json:"message"`
}

// Validate implements Validator. Name and email are required.
func (b DemoRequestBody) Validate() []string {
	var errs []string
	if b.Name == "" {
		errs = append(errs, "name is required")
	}
	if b.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(b.Email) {
		errs = append(errs, "email format is invalid")
	}
	return errs
}

type DemoRequestController struct {
	Logger  *slog.Logger
	Service domain.EmailService
}

func NewDemoRequestController(logger *slog.Logger, svc domain.EmailService) *DemoRequestController {
	return &DemoRequestController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit a demo request
// @Description Accept a demo/contact form submission. A confirmation email is queued for the applicant and a notification for each admin recipient; delivery happens asynchronously.
// @Tags demo
// @Accept json
// @Produce json
// @Param request body DemoRequestBody true "Demo request form"
// @Success 202 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /demo-request [post]
func (c *DemoRequestController) Submit(w http.ResponseWriter, r *http.Request) {
	var body DemoRequestBody
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}

	req := &domain.DemoRequest{
		Name:         body.Name,
		Email:        body.Email,
		Organization: body.Organization,
		Phone:        body.Phone,
		Country:      body.Country,
		Message:      body.Message,
	}
	if err := c.Service.SubmitDemoRequest(r.Context(), req); err != nil {
		c.Logger.Error("demo request submission failed", "email", body.Email, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to submit demo request")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusAccepted, map[string]string{
		"message": "Demo talebiniz başarıyla gönderildi.",
	})
}
