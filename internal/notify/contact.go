package notify

import (
	"fmt"
	"html"
	"strings"
)

// ContactEmailData carries the validated contact-form fields into the
// rendered notification.
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

const contactTextTemplate = `New contact form submission:

Name: %s
Email: %s
Subject: %s

Message:
%s

---
This message was sent from your portfolio contact form.
Reply to: %s
`

const contactHTMLTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">New Portfolio Contact</h2>
  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Subject:</strong> %s</p>
  </div>
  <div style="background: #ffffff; padding: 20px; border-radius: 8px; border-left: 4px solid #2563eb;">
    <h3>Message:</h3>
    <p style="line-height: 1.6;">%s</p>
  </div>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #e2e8f0;">
  <p style="color: #64748b; font-size: 14px;">
    This message was sent from your portfolio contact form.<br>
    Reply directly to: <a href="mailto:%s">%s</a>
  </p>
</div>`

// ContactEmail renders the fixed notification sent for each accepted
// submission. The reply-to address is the submitter so a plain reply in the
// mail client answers them directly.
func ContactEmail(to, toName string, data ContactEmailData) EmailMessage {
	text := fmt.Sprintf(contactTextTemplate,
		data.Name, data.Email, data.Subject, data.Message, data.Email)

	htmlMessage := strings.ReplaceAll(html.EscapeString(data.Message), "\n", "<br>")
	htmlBody := fmt.Sprintf(contactHTMLTemplate,
		html.EscapeString(data.Name),
		html.EscapeString(data.Email),
		html.EscapeString(data.Subject),
		htmlMessage,
		html.EscapeString(data.Email),
		html.EscapeString(data.Email),
	)

	return EmailMessage{
		To:      to,
		ToName:  toName,
		ReplyTo: data.Email,
		Subject: "Portfolio Contact: " + data.Subject,
		Body:    text,
		HTML:    htmlBody,
	}
}
