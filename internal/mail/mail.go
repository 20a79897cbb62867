package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resty.dev/v3"
)

// ErrNotConfigured is returned by every send when no provider API key is set.
var ErrNotConfigured = errors.New("email service not configured")

// ContactInquiry is a contact-form submission relayed to the operator.
type ContactInquiry struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Mailer relays formatted notifications to the fixed operator address.
type Mailer interface {
	SendContactInquiry(ctx context.Context, inq ContactInquiry) error
	SendNewsletterSignup(ctx context.Context, email string) error
}

// ResendMailer sends through the Resend transactional email API.
type ResendMailer struct {
	client       *resty.Client
	apiKey       string
	fromAddress  string
	contactEmail string
}

// NewResendMailer builds a mailer. An empty apiKey yields a mailer whose
// sends all fail with ErrNotConfigured, matching the relay contract.
func NewResendMailer(apiKey, fromAddress, contactEmail string) *ResendMailer {
	return &ResendMailer{
		client:       resty.New().SetBaseURL("https://api.resend.com").SetAuthToken(apiKey),
		apiKey:       apiKey,
		fromAddress:  fromAddress,
		contactEmail: contactEmail,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to,omitempty"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) send(ctx context.Context, req sendRequest) error {
	if m.apiKey == "" {
		return ErrNotConfigured
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/emails")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("email send failed: %d %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func contactSubject(inq ContactInquiry) string {
	if inq.Subject == "" {
		return "New Inquiry from " + inq.Name
	}
	return inq.Subject
}

func (m *ResendMailer) SendContactInquiry(ctx context.Context, inq ContactInquiry) error {
	subject := contactSubject(inq)

	var b strings.Builder
	b.WriteString(`<div style="font-family: serif; padding: 40px; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h1 style="letter-spacing: 0.5em; text-transform: uppercase; text-align: center;">SOOCCI</h1>`)
	b.WriteString(`<h2 style="text-transform: uppercase; text-align: center;">New Contact Inquiry</h2>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, inq.Name)
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, inq.Email)
	fmt.Fprintf(&b, `<p><strong>Subject:</strong> %s</p>`, subject)
	fmt.Fprintf(&b, `<blockquote style="border-left: 2px solid #000; padding-left: 20px; font-style: italic;">%s</blockquote>`, inq.Message)
	b.WriteString(`</div>`)

	return m.send(ctx, sendRequest{
		From:    m.fromAddress,
		To:      []string{m.contactEmail},
		Subject: subject,
		ReplyTo: inq.Email,
		HTML:    b.String(),
	})
}

func (m *ResendMailer) SendNewsletterSignup(ctx context.Context, email string) error {
	html := fmt.Sprintf(`<div style="font-family: serif; padding: 40px; max-width: 600px; margin: 0 auto;">`+
		`<h1 style="letter-spacing: 0.5em; text-transform: uppercase; text-align: center;">SOOCCI</h1>`+
		`<h2 style="text-transform: uppercase; text-align: center;">New Subscriber</h2>`+
		`<p style="text-align: center; font-size: 18px;">%s</p></div>`, email)

	return m.send(ctx, sendRequest{
		From:    m.fromAddress,
		To:      []string{m.contactEmail},
		Subject: "New Newsletter Subscription",
		HTML:    html,
	})
}
