package render

import (
	"strings"
	"time"

	"prezumi-backend/internal/resumes"
	"prezumi-backend/internal/templates"
)

// Preview is the structured render tree returned to clients that draw
// the document themselves. Sections appear in a fixed order and are
// omitted entirely when their source data is empty.
type Preview struct {
	Style    templates.Style `json:"style"`
	Name     string          `json:"name"`
	JobTitle string          `json:"jobTitle,omitempty"`
	Contact  string          `json:"contact,omitempty"`
	Sections []Section       `json:"sections"`
}

type Section struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Body  string   `json:"body,omitempty"`
	Items []Item   `json:"items,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

type Item struct {
	Heading string `json:"heading"`
	Detail  string `json:"detail,omitempty"`
	Meta    string `json:"meta,omitempty"`
	Body    string `json:"body,omitempty"`
}

// BuildPreview assembles the render tree for a resume. Unknown template
// ids fall back to the default style rather than failing.
func BuildPreview(r resumes.Resume) Preview {
	style := templates.Resolve(r.Template)
	p := Preview{
		Style:    style,
		Name:     strings.TrimSpace(r.PersonalInfo.FirstName + " " + r.PersonalInfo.LastName),
		JobTitle: r.PersonalInfo.JobTitle,
		Contact:  ContactLine(r.PersonalInfo),
	}

	if strings.TrimSpace(r.Summary) != "" {
		p.Sections = append(p.Sections, Section{
			ID:    "summary",
			Title: "Professional Summary",
			Body:  r.Summary,
		})
	}

	if len(r.Experience) > 0 {
		sec := Section{ID: "experience", Title: "Experience"}
		for _, e := range r.Experience {
			sec.Items = append(sec.Items, Item{
				Heading: e.Title,
				Detail:  "at " + e.Company,
				Meta:    DateRange(e.StartDate, e.EndDate),
				Body:    e.Description,
			})
		}
		p.Sections = append(p.Sections, sec)
	}

	if len(r.Education) > 0 {
		sec := Section{ID: "education", Title: "Education"}
		for _, e := range r.Education {
			sec.Items = append(sec.Items, Item{
				Heading: degreeLine(e),
				Detail:  "– " + e.Institution,
				Meta:    e.Year,
			})
		}
		p.Sections = append(p.Sections, sec)
	}

	if tags := SplitSkills(r.Skills); len(tags) > 0 {
		p.Sections = append(p.Sections, Section{ID: "skills", Title: "Skills", Tags: tags})
	}

	return p
}

// ContactLine joins the present contact fields with a bullet separator.
func ContactLine(pi resumes.PersonalInfo) string {
	var parts []string
	for _, v := range []string{pi.Email, pi.Phone, pi.Location} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " • ")
}

// DateRange renders "start – end" with an en dash.
func DateRange(start, end string) string {
	return start + " – " + end
}

// SplitSkills splits the comma-separated skills field into trimmed tags,
// dropping empty entries.
func SplitSkills(skills string) []string {
	var out []string
	for _, s := range strings.Split(skills, ",") {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SplitParagraphs splits letter content on blank lines, dropping
// whitespace-only paragraphs.
func SplitParagraphs(content string) []string {
	var out []string
	for _, p := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// DateLine formats a date the way letters are headed, e.g. "August 31, 2026".
func DateLine(t time.Time) string {
	return t.Format("January 2, 2006")
}

func degreeLine(e resumes.Education) string {
	if strings.TrimSpace(e.Field) != "" {
		return e.Degree + " in " + e.Field
	}
	return e.Degree
}
