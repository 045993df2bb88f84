package render

import (
	"html/template"
	"strings"

	"prezumi-backend/internal/resumes"
	"prezumi-backend/internal/templates"
)

// resumeHTML is a self-contained print page: all styling is inlined so the
// document renders identically in a browser print dialog and in headless
// Chrome.
const resumeHTML = `<!DOCTYPE html>
<html>
<head>
<title>Resume</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: {{.Font}}; line-height: 1.6; color: #333; }
.page { max-width: 800px; margin: 0 auto; padding: 40px; }
.header { text-align: {{.HeaderAlign}}; padding: 30px; margin: -40px -40px 30px -40px; background: {{.HeaderBg}}; color: {{.HeaderColor}}; }
.name { font-size: 32px; font-weight: bold; margin-bottom: 5px; }
.title { font-size: 18px; opacity: 0.9; margin-bottom: 10px; }
.contact { font-size: 13px; opacity: 0.8; }
.contact span { margin: 0 8px; }
.section { margin-bottom: 25px; }
.section-title { font-size: 14px; font-weight: bold; color: {{.Accent}}; margin-bottom: 12px; {{.SectionExtra}} }
.item { margin-bottom: 18px; }
.item-header { display: flex; justify-content: space-between; flex-wrap: wrap; margin-bottom: 5px; }
.item-title { font-weight: bold; font-size: 15px; }
.item-sub { color: #666; }
.item-date { font-size: 13px; color: #888; }
.item-desc { font-size: 14px; white-space: pre-line; margin-top: 8px; }
.skills-list { display: flex; flex-wrap: wrap; gap: 8px; }
.skill-tag { background: {{.Accent}}15; color: {{.Accent}}; padding: 4px 12px; border-radius: 20px; font-size: 13px; }
{{.Override}}
@media print { body { padding: 0; } .page { padding: 20px; } .header { margin: -20px -20px 20px -20px; } }
</style>
</head>
<body>
<div class="page">
<div class="header">
<div class="name">{{.Name}}</div>
{{if .JobTitle}}<div class="title">{{.JobTitle}}</div>{{end}}
<div class="contact">{{range .Contacts}}<span>{{.}}</span>{{end}}</div>
</div>
{{if .Summary}}<div class="section"><div class="section-title">Professional Summary</div><p style="font-size:14px">{{.Summary}}</p></div>{{end}}
{{if .Experience}}<div class="section"><div class="section-title">Experience</div>
{{range .Experience}}<div class="item"><div class="item-header"><div><span class="item-title">{{.Title}}</span> <span class="item-sub">at {{.Company}}</span></div><span class="item-date">{{.Dates}}</span></div>{{if .Description}}<div class="item-desc">{{.Description}}</div>{{end}}</div>{{end}}</div>{{end}}
{{if .Education}}<div class="section"><div class="section-title">Education</div>
{{range .Education}}<div class="item"><div class="item-header"><div><span class="item-title">{{.Degree}}</span> <span class="item-sub">– {{.Institution}}</span></div><span class="item-date">{{.Year}}</span></div></div>{{end}}</div>{{end}}
{{if .Skills}}<div class="section"><div class="section-title">Skills</div><div class="skills-list">{{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}</div></div>{{end}}
</div>
</body>
</html>`

var resumeTmpl = template.Must(template.New("resume").Parse(resumeHTML))

type resumePage struct {
	Font         template.CSS
	HeaderAlign  template.CSS
	HeaderBg     template.CSS
	HeaderColor  template.CSS
	Accent       template.CSS
	SectionExtra template.CSS
	Override     template.CSS

	Name     string
	JobTitle string
	Contacts []string

	Summary    string
	Experience []resumeExperience
	Education  []resumeEducation
	Skills     []string
}

type resumeExperience struct {
	Title       string
	Company     string
	Dates       string
	Description string
}

type resumeEducation struct {
	Degree      string
	Institution string
	Year        string
}

// ResumeHTML renders the print page for a resume in its template's style.
func ResumeHTML(r resumes.Resume) (string, error) {
	style := templates.Resolve(r.Template)

	page := resumePage{
		Font:         template.CSS(style.Font),
		HeaderAlign:  template.CSS(style.HeaderAlignment),
		HeaderBg:     template.CSS(style.HeaderBackground),
		HeaderColor:  template.CSS(style.HeaderTextColor),
		Accent:       template.CSS(style.AccentColor),
		SectionExtra: sectionTitleExtra(style),
		Override:     minimalOverride(style),
		Name:         strings.TrimSpace(r.PersonalInfo.FirstName + " " + r.PersonalInfo.LastName),
		JobTitle:     r.PersonalInfo.JobTitle,
		Summary:      r.Summary,
		Skills:       SplitSkills(r.Skills),
	}
	for _, v := range []string{r.PersonalInfo.Email, r.PersonalInfo.Phone, r.PersonalInfo.Location} {
		if strings.TrimSpace(v) != "" {
			page.Contacts = append(page.Contacts, v)
		}
	}
	for _, e := range r.Experience {
		page.Experience = append(page.Experience, resumeExperience{
			Title:       e.Title,
			Company:     e.Company,
			Dates:       DateRange(e.StartDate, e.EndDate),
			Description: e.Description,
		})
	}
	for _, e := range r.Education {
		page.Education = append(page.Education, resumeEducation{
			Degree:      degreeLine(e),
			Institution: e.Institution,
			Year:        e.Year,
		})
	}

	var b strings.Builder
	if err := resumeTmpl.Execute(&b, page); err != nil {
		return "", err
	}
	return b.String(), nil
}

func sectionTitleExtra(style templates.Style) template.CSS {
	switch style.SectionTitle {
	case templates.SectionBorderBottom:
		return "border-bottom: 1px solid #ddd; padding-bottom: 5px;"
	case templates.SectionUppercaseTitle:
		return "text-transform: uppercase; letter-spacing: 2px;"
	case templates.SectionColoredTitle:
		return template.CSS("background: " + style.AccentColor + "10; padding: 8px 12px; border-radius: 4px;")
	default:
		return ""
	}
}

func minimalOverride(style templates.Style) template.CSS {
	if style.SectionTitle != templates.SectionSimple {
		return ""
	}
	return ".section-title { font-weight: 500; font-size: 12px; text-transform: uppercase; letter-spacing: 1px; color: #9ca3af; }"
}
