package render

import (
	"html/template"
	"strings"
	"time"

	"prezumi-backend/internal/coverletters"
)

const letterPrintHTML = `<!DOCTYPE html>
<html>
<head>
<title>Cover Letter</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Georgia, serif; line-height: 1.8; padding: 60px; max-width: 700px; margin: 0 auto; color: #333; }
.date { color: #666; margin-bottom: 30px; }
.recipient { margin-bottom: 30px; }
.recipient p { margin-bottom: 3px; }
.greeting { margin-bottom: 20px; }
.content p { margin-bottom: 15px; text-align: justify; }
.closing { margin-top: 30px; }
.signature { margin-top: 40px; font-weight: bold; }
</style>
</head>
<body>
<div class="date">{{.Date}}</div>
<div class="recipient"><p>{{.Recipient}}</p><p>{{.Company}}</p></div>
<p class="greeting">Dear {{.Recipient}},</p>
<div class="content">{{range .Paragraphs}}<p>{{.}}</p>{{end}}</div>
<div class="closing"><p>Sincerely,</p><p class="signature">{{.Sender}}</p></div>
</body>
</html>`

var letterTmpl = template.Must(template.New("letter").Parse(letterPrintHTML))

type letterPage struct {
	Date       string
	Recipient  string
	Company    string
	Sender     string
	Paragraphs []string
}

// LetterOptions carry the fields that are not persisted with the letter but
// appear on the printed page.
type LetterOptions struct {
	HiringManager string
	SenderName    string
	Date          time.Time
}

// LetterHTML renders the print page for a cover letter.
func LetterHTML(l coverletters.CoverLetter, opts LetterOptions) (string, error) {
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}
	recipient := strings.TrimSpace(opts.HiringManager)
	if recipient == "" {
		recipient = "Hiring Manager"
	}
	sender := strings.TrimSpace(opts.SenderName)
	if sender == "" {
		sender = "Your Name"
	}

	page := letterPage{
		Date:       DateLine(date),
		Recipient:  recipient,
		Company:    l.CompanyName,
		Sender:     sender,
		Paragraphs: SplitParagraphs(l.Content),
	}

	var b strings.Builder
	if err := letterTmpl.Execute(&b, page); err != nil {
		return "", err
	}
	return b.String(), nil
}
