// Package templates renders the report notification emails.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// TemplateMonthlyReport is the template announcing a new monthly report.
const TemplateMonthlyReport = "monthly_report"

// MonthlyReportData contains data for the monthly report email template.
type MonthlyReportData struct {
	UserName    string
	MonthLabel  string
	Summary     string
	Highlights  []string
	Suggestions []string
	ReportURL   string
}

// Email holds both bodies of a rendered template.
type Email struct {
	HTML string
	Text string
}

// Renderer executes the embedded HTML and plain text templates.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

var funcs = map[string]any{
	"firstName": firstName,
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.New("").Funcs(funcs).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	text, err := texttemplate.New("").Funcs(funcs).ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{html: html, text: text}, nil
}

// Render executes the HTML and text variants of name. Both must exist.
func (r *Renderer) Render(name string, data any) (Email, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return Email{}, fmt.Errorf("failed to render HTML template %s: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return Email{}, fmt.Errorf("failed to render text template %s: %w", name, err)
	}
	return Email{HTML: html.String(), Text: text.String()}, nil
}

// RenderMonthlyReport renders the "report is ready" email.
func (r *Renderer) RenderMonthlyReport(data MonthlyReportData) (Email, error) {
	return r.Render(TemplateMonthlyReport, data)
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
