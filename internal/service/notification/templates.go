package notification

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type mailTemplate struct {
	subject string
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

// templateData is the view passed to every notification template.
type templateData struct {
	FirstName         string
	FAQURL            string
	InterviewSchedule string
}

var templateFiles = map[domain.ApplicationStatus]struct {
	name    string
	subject string
}{
	domain.ApplicationStatusPhoneInterviewPhase:  {"phone_interview", "[GIS] Invitation to Phone interview!"},
	domain.ApplicationStatusOnsiteInterviewPhase: {"onsite_interview", "[GIS] Invitation to OnSite Interview!"},
	domain.ApplicationStatusAccepted:             {"accepted", "[GIS] Welcome to GIS Training!"},
	domain.ApplicationStatusRejected:             {"rejected", "[GIS] Sorry!"},
}

func loadTemplates() (map[domain.ApplicationStatus]mailTemplate, error) {
	out := make(map[domain.ApplicationStatus]mailTemplate, len(templateFiles))
	for status, f := range templateFiles {
		html, err := htmltemplate.ParseFS(templateFS, "templates/layout.html.tmpl", "templates/"+f.name+".html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse %s html: %w", f.name, err)
		}
		text, err := texttemplate.ParseFS(templateFS, "templates/layout.txt.tmpl", "templates/"+f.name+".txt.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse %s text: %w", f.name, err)
		}
		out[status] = mailTemplate{subject: f.subject, html: html, text: text}
	}
	return out, nil
}

func (t mailTemplate) render(data templateData) (html, text string, err error) {
	var hb, tb bytes.Buffer
	if err := t.html.ExecuteTemplate(&hb, "layout", data); err != nil {
		return "", "", fmt.Errorf("render html: %w", err)
	}
	if err := t.text.ExecuteTemplate(&tb, "layout", data); err != nil {
		return "", "", fmt.Errorf("render text: %w", err)
	}
	return hb.String(), strings.TrimSpace(tb.String()) + "\n", nil
}
