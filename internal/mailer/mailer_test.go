package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/grandstage/stagecms/internal/store"
)

var testCreds = store.EmailCredentials{
	EmailAddress: "ops@grandstageprod.com",
	AppPassword:  "secret",
	SMTPServer:   "smtp.example.com",
	SMTPPort:     587,
	FromName:     "Grand Stage Productions",
}

var testSubmission = store.ContactSubmission{
	ID:      1,
	Name:    "Pat",
	Email:   "pat@example.com",
	Subject: "Booking inquiry",
	Message: "Do you travel for shows?",
}

type sentMail struct {
	to  string
	msg []byte
}

func fakeMailer(fail map[string]error) (*Mailer, *[]sentMail) {
	var sent []sentMail
	m := &Mailer{send: func(_ context.Context, _ store.EmailCredentials, to string, msg []byte) error {
		sent = append(sent, sentMail{to: to, msg: msg})
		return fail[to]
	}}
	return m, &sent
}

func TestDispatchSendsBothEmails(t *testing.T) {
	m, sent := fakeMailer(nil)

	result := m.Dispatch(context.Background(), testCreds, testSubmission)
	if !result.OK() {
		t.Fatalf("Dispatch failed: ack=%v alert=%v", result.Ack.Err, result.Alert.Err)
	}
	if len(*sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(*sent))
	}

	if (*sent)[0].to != "pat@example.com" {
		t.Errorf("first send to %q, want the submitter", (*sent)[0].to)
	}
	if (*sent)[1].to != "ops@grandstageprod.com" {
		t.Errorf("second send to %q, want the operator", (*sent)[1].to)
	}

	if result.Ack.Subject != "Thank you for contacting Grand Stage Productions" {
		t.Errorf("ack subject = %q", result.Ack.Subject)
	}
	if result.Alert.Subject != "New Contact Form Submission: Booking inquiry" {
		t.Errorf("alert subject = %q", result.Alert.Subject)
	}
}

func TestDispatchIndependentFailures(t *testing.T) {
	ackErr := errors.New("mailbox full")
	m, sent := fakeMailer(map[string]error{"pat@example.com": ackErr})

	result := m.Dispatch(context.Background(), testCreds, testSubmission)
	if result.OK() {
		t.Fatal("expected failed result when ack send fails")
	}
	if !errors.Is(result.Ack.Err, ackErr) {
		t.Errorf("Ack.Err = %v, want the send error", result.Ack.Err)
	}

	// The operator alert is still attempted and succeeds
	if !result.Alert.OK() {
		t.Errorf("Alert.Err = %v, want nil", result.Alert.Err)
	}
	if len(*sent) != 2 {
		t.Errorf("sent %d emails, want both attempts", len(*sent))
	}
}

func TestBuildMessageHeadersAndParts(t *testing.T) {
	msg := string(buildMessage(testCreds, "pat@example.com", "Hello", "<p>Hi</p>", "Hi"))

	for _, want := range []string{
		"From: Grand Stage Productions <ops@grandstageprod.com>\r\n",
		"To: pat@example.com\r\n",
		"Subject: Hello\r\n",
		"MIME-Version: 1.0",
		"multipart/alternative",
		"text/html",
		"text/plain",
		"<p>Hi</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildMessageHTMLOnly(t *testing.T) {
	msg := string(buildMessage(testCreds, "ops@grandstageprod.com", "Alert", "<p>New</p>", ""))
	if strings.Contains(msg, "text/plain") {
		t.Error("HTML-only message should not carry a text/plain part")
	}
	if !strings.Contains(msg, "<p>New</p>") {
		t.Error("message missing HTML body")
	}
}

func TestMessageBodiesIncludeSubmission(t *testing.T) {
	ack := thankYouHTML(testSubmission, testCreds.FromName)
	for _, want := range []string{"Pat", "Booking inquiry", "Thank you for reaching out!"} {
		if !strings.Contains(ack, want) {
			t.Errorf("thank-you body missing %q", want)
		}
	}

	alert := alertHTML(testSubmission)
	for _, want := range []string{"Pat", "pat@example.com", "Booking inquiry", "Do you travel for shows?"} {
		if !strings.Contains(alert, want) {
			t.Errorf("alert body missing %q", want)
		}
	}
}

func TestMessageEscapesHTML(t *testing.T) {
	sub := testSubmission
	sub.Name = `<script>alert("x")</script>`
	alert := alertHTML(sub)
	if strings.Contains(alert, "<script>") {
		t.Error("submission content was not HTML-escaped")
	}
}
