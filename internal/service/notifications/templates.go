package notifications

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	templateDemoBooking    = "demo_booking.html"
	templateContactMessage = "contact_message.html"
	templateRegistration   = "registration.html"
)

// demoBookingView данные для письма о демо-бронировании
type demoBookingView struct {
	ID                     string
	Name                   string
	Email                  string
	Position               string
	PhoneNumber            string
	SchoolName             string
	SchoolAddress          string
	SchoolType             string
	StudentCount           string
	CurrentSystem          string
	Date                   string
	Time                   string
	DemoMode               string
	PreferredContactMethod string
	Timeframe              string
	SpecificNeeds          []string
	AdditionalComments     string
	SubmittedOn            string
}

type contactMessageView struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	SubmittedOn string
}

type registrationView struct {
	ID            string
	SchoolName    string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	StudentCount  string
	Plan          string
	Message       string
	SubmittedOn   string
}

func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}
	return buf.String(), nil
}
