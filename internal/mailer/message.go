package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"mime/multipart"
	"mime/quotedprintable"
	"strings"

	"github.com/grandstage/stagecms/internal/store"
)

// buildMessage assembles a multipart/alternative RFC 5322 message with an
// optional plain-text part alongside the HTML part.
func buildMessage(creds store.EmailCredentials, to, subject, htmlBody, textBody string) []byte {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", creds.FromName, creds.EmailAddress)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	buf.WriteString("\r\n")

	if textBody != "" {
		writePart(mw, "text/plain; charset=utf-8", textBody)
	}
	writePart(mw, "text/html; charset=utf-8", htmlBody)
	_ = mw.Close()

	return buf.Bytes()
}

func writePart(mw *multipart.Writer, contentType, body string) {
	header := map[string][]string{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		return
	}
	qp := quotedprintable.NewWriter(part)
	_, _ = qp.Write([]byte(body))
	_ = qp.Close()
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// thankYouHTML is the acknowledgement body sent to the submitter.
func thankYouHTML(sub store.ContactSubmission, fromName string) string {
	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; color: #333; line-height: 1.6;">`)
	b.WriteString(`<div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 2px solid #722F37; border-radius: 10px;">`)
	fmt.Fprintf(&b, `<div style="text-align: center; margin-bottom: 30px;"><h1 style="color: #722F37;">%s</h1>`, esc(fromName))
	b.WriteString(`<p style="color: #8B1538; font-style: italic; font-size: 16px;">Bringing stories to life</p></div>`)
	b.WriteString(`<h2 style="color: #722F37;">Thank you for reaching out!</h2>`)
	fmt.Fprintf(&b, `<p>Dear %s,</p>`, esc(sub.Name))
	fmt.Fprintf(&b, `<p>Thank you for contacting %s. We have received your message and will get back to you as soon as possible.</p>`, esc(fromName))
	b.WriteString(`<div style="background-color: #f8f8f8; padding: 15px; border-left: 4px solid #722F37; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #722F37; margin-top: 0;">Your Message Summary:</h3>`)
	fmt.Fprintf(&b, `<p><strong>Subject:</strong> %s</p>`, esc(sub.Subject))
	fmt.Fprintf(&b, `<p><strong>Message:</strong><br>%s</p></div>`, esc(sub.Message))
	b.WriteString(`<p>We appreciate your interest in our theater group and look forward to connecting with you.</p>`)
	fmt.Fprintf(&b, `<p>Best regards,<br><strong>%s Team</strong></p>`, esc(fromName))
	b.WriteString(`<hr style="border: none; border-top: 2px solid #722F37; margin: 30px 0;">`)
	b.WriteString(`<p style="font-size: 12px; color: #666; text-align: center;">This is an automated response. Please do not reply to this email.</p>`)
	b.WriteString(`</div></body></html>`)
	return b.String()
}

// thankYouText is the plain-text alternative for the acknowledgement.
func thankYouText(sub store.ContactSubmission, fromName string) string {
	return fmt.Sprintf(`Thank you for contacting %s!

Dear %s,

Thank you for reaching out to us. We have received your message about %q and will get back to you as soon as possible.

Your Message:
%s

We appreciate your interest in our theater group and look forward to connecting with you.

Best regards,
%s Team
`, fromName, sub.Name, sub.Subject, sub.Message, fromName)
}

// alertHTML is the operator notification body.
func alertHTML(sub store.ContactSubmission) string {
	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; color: #333; line-height: 1.6;">`)
	b.WriteString(`<div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 2px solid #722F37; border-radius: 10px;">`)
	b.WriteString(`<h2 style="color: #722F37;">New Contact Form Submission</h2>`)
	b.WriteString(`<div style="background-color: #f8f8f8; padding: 15px; border-radius: 5px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #722F37; margin-top: 0;">Contact Details:</h3>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, esc(sub.Name))
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, esc(sub.Email))
	fmt.Fprintf(&b, `<p><strong>Subject:</strong> %s</p>`, esc(sub.Subject))
	fmt.Fprintf(&b, `<p><strong>Submitted:</strong> %s</p></div>`, sub.SubmittedAt.Format("January 2, 2006 at 3:04 PM"))
	b.WriteString(`<div style="background-color: #fff; padding: 15px; border-left: 4px solid #722F37; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #722F37; margin-top: 0;">Message:</h3>`)
	fmt.Fprintf(&b, `<p>%s</p></div>`, esc(sub.Message))
	b.WriteString(`<p><em>Please respond to this inquiry promptly.</em></p>`)
	b.WriteString(`</div></body></html>`)
	return b.String()
}
