package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// DemoRequest is a submitted demo/contact form. One submission fans out to an
// applicant confirmation plus one notification per configured admin recipient.
type DemoRequest struct {
	Name         string
	Email        string
	Organization string
	Phone        string
	Country      string
	Message      string
}

// EmailService defines the contract for sending domain-level emails. Sends
// are queued, not immediate: methods return once the jobs are admitted, and
// per-job outcomes are settled asynchronously.
type EmailService interface {
	SubmitDemoRequest(ctx context.Context, req *DemoRequest) error
}
