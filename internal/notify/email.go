package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/ugmchurch/steeple/internal/content"
)

const emailFrom = "Church Volunteer System <onboarding@resend.dev>"

// EmailSink sends an application summary email through the Resend API.
type EmailSink struct {
	client   *http.Client
	endpoint string
	apiKey   string
	to       string
}

// NewEmailSink creates the email sink. Leaving apiKey or to empty makes the
// sink unconfigured.
func NewEmailSink(client *http.Client, endpoint, apiKey, to string) *EmailSink {
	if client == nil {
		client = &http.Client{Timeout: deliverTimeout}
	}
	return &EmailSink{client: client, endpoint: endpoint, apiKey: apiKey, to: to}
}

func (e *EmailSink) Name() string { return "email" }

func (e *EmailSink) Configured() bool { return e.apiKey != "" && e.to != "" }

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (e *EmailSink) Deliver(ctx context.Context, app *content.Application) error {
	body, err := json.Marshal(resendRequest{
		From:    emailFrom,
		To:      []string{e.to},
		Subject: fmt.Sprintf("New Volunteer Application - %s (%s)", app.FullName, app.SelectedUnit),
		HTML:    emailBody(app),
	})
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email service returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// emailBody renders the application as the HTML summary sent to the church
// office. All applicant-supplied values are escaped.
func emailBody(app *content.Application) string {
	var b strings.Builder

	b.WriteString("<h2>New Volunteer Application</h2>\n")
	b.WriteString("<p>A new volunteer has applied to join a ministry unit.</p>\n")

	section(&b, "Personal Information",
		item("Name", app.FullName),
		item("Email", app.Email),
		item("Phone", app.Phone),
		item("Address", app.Address),
		item("Date of Birth", app.DateOfBirth),
		item("Gender", app.Gender),
	)
	section(&b, "Ministry Selection",
		item("Primary Choice", app.SelectedUnit),
		item("Second Choice", orDefault(app.SecondChoiceUnit, "None")),
	)
	section(&b, "Availability",
		item("Sunday Service", yesNo(app.AvailableSunday)),
		item("Tuesday Bible Study", yesNo(app.AvailableTuesday)),
		item("Thursday Miracle Hour", yesNo(app.AvailableThursday)),
		item("Preferred Frequency", app.PreferredServiceTime),
	)
	section(&b, "Experience & Skills",
		item("Previous Experience", orDefault(app.PreviousExperience, "None provided")),
		item("Relevant Skills", orDefault(app.RelevantSkills, "None provided")),
	)
	section(&b, "Spiritual Background",
		item("Membership Status", app.MembershipStatus),
		item("Salvation Status", app.SalvationStatus),
		item("Baptism Status", app.BaptismStatus),
		item("Time Attending", app.HowLongAttending),
	)

	b.WriteString("<h3>Motivation</h3>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(app.ReasonForJoining))

	section(&b, "Emergency Contact",
		item("Name", app.EmergencyName),
		item("Phone", app.EmergencyPhone),
		item("Relationship", app.EmergencyRelationship),
	)

	fmt.Fprintf(&b, "<p><em>Submitted on %s</em></p>\n", formatSubmitted(app.SubmittedAt))
	return b.String()
}

func section(b *strings.Builder, title string, items ...string) {
	fmt.Fprintf(b, "<h3>%s</h3>\n<ul>\n", title)
	for _, it := range items {
		b.WriteString(it)
	}
	b.WriteString("</ul>\n")
}

func item(label, value string) string {
	return fmt.Sprintf("<li><strong>%s:</strong> %s</li>\n", label, html.EscapeString(value))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatSubmitted(s string) string {
	if t, ok := content.ParseDate(s); ok {
		return t.Format("January 2, 2006 at 15:04 MST")
	}
	return s
}
