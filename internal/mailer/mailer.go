// Package mailer sends the contact-form notification emails over SMTP.
// Delivery is a single best-effort attempt per recipient: no queue, no
// retry. Failures are reported to the caller for logging and never reach
// the public submitter.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"github.com/grandstage/stagecms/internal/store"
)

// DialTimeout bounds the SMTP connection attempt.
const DialTimeout = 30 * time.Second

// SendOutcome is the result of one email send attempt.
type SendOutcome struct {
	Recipient string
	Subject   string
	Err       error
}

// OK reports whether the send succeeded.
func (o SendOutcome) OK() bool {
	return o.Err == nil
}

// DispatchResult holds the two independent send outcomes for one contact
// submission: the acknowledgement to the submitter and the alert to the
// site operator.
type DispatchResult struct {
	Ack   SendOutcome
	Alert SendOutcome
}

// OK reports whether both sends succeeded.
func (r DispatchResult) OK() bool {
	return r.Ack.OK() && r.Alert.OK()
}

// sendFunc delivers one assembled message. Swappable in tests.
type sendFunc func(ctx context.Context, creds store.EmailCredentials, to string, msg []byte) error

// Mailer sends notification emails using admin-configured SMTP credentials.
type Mailer struct {
	send sendFunc
}

// New creates a Mailer using a real SMTP transport with STARTTLS.
func New() *Mailer {
	return &Mailer{send: smtpSend}
}

// Dispatch sends the thank-you email to the submitter and the alert email
// to the operator address. The two attempts are independent: a failure of
// one does not stop the other, and each outcome is reported separately.
func (m *Mailer) Dispatch(ctx context.Context, creds store.EmailCredentials, sub store.ContactSubmission) DispatchResult {
	ackSubject := "Thank you for contacting " + creds.FromName
	alertSubject := "New Contact Form Submission: " + sub.Subject

	ack := SendOutcome{Recipient: sub.Email, Subject: ackSubject}
	ackMsg := buildMessage(creds, sub.Email, ackSubject, thankYouHTML(sub, creds.FromName), thankYouText(sub, creds.FromName))
	ack.Err = m.send(ctx, creds, sub.Email, ackMsg)

	alert := SendOutcome{Recipient: creds.EmailAddress, Subject: alertSubject}
	alertMsg := buildMessage(creds, creds.EmailAddress, alertSubject, alertHTML(sub), "")
	alert.Err = m.send(ctx, creds, creds.EmailAddress, alertMsg)

	result := DispatchResult{Ack: ack, Alert: alert}
	for _, o := range []SendOutcome{ack, alert} {
		if o.Err != nil {
			slog.Warn("notification email failed",
				"recipient", o.Recipient,
				"subject", o.Subject,
				"error", o.Err,
			)
		} else {
			slog.Info("notification email sent", "recipient", o.Recipient, "subject", o.Subject)
		}
	}
	return result
}

// smtpSend delivers a message over SMTP with STARTTLS and password auth.
func smtpSend(ctx context.Context, creds store.EmailCredentials, to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", creds.SMTPServer, creds.SMTPPort)

	dialer := net.Dialer{Timeout: DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, creds.SMTPServer)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.StartTLS(&tls.Config{ServerName: creds.SMTPServer}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	auth := smtp.PlainAuth("", creds.EmailAddress, creds.AppPassword, creds.SMTPServer)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(creds.EmailAddress); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message: %w", err)
	}

	return client.Quit()
}
