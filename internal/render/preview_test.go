package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prezumi-backend/internal/resumes"
)

func TestBuildPreviewEmptyResumeHasNoSections(t *testing.T) {
	p := BuildPreview(resumes.Resume{
		Template:     "classic",
		PersonalInfo: resumes.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
	})

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Empty(t, p.Sections)
	assert.Equal(t, "classic", p.Style.ID)
}

func TestBuildPreviewSectionOrder(t *testing.T) {
	p := BuildPreview(resumes.Resume{
		Template: "modern",
		PersonalInfo: resumes.PersonalInfo{
			FirstName: "Jane",
			Email:     "jane@example.com",
			Phone:     "555-0100",
			Location:  "Lisbon",
		},
		Summary: "Engineer.",
		Experience: []resumes.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "2020", EndDate: "2023"},
		},
		Education: []resumes.Education{
			{Degree: "BSc", Field: "CS", Institution: "State", Year: "2019"},
		},
		Skills: "Go, SQL",
	})

	require.Len(t, p.Sections, 4)
	assert.Equal(t, "summary", p.Sections[0].ID)
	assert.Equal(t, "experience", p.Sections[1].ID)
	assert.Equal(t, "education", p.Sections[2].ID)
	assert.Equal(t, "skills", p.Sections[3].ID)

	assert.Equal(t, "jane@example.com • 555-0100 • Lisbon", p.Contact)

	exp := p.Sections[1].Items[0]
	assert.Equal(t, "Engineer", exp.Heading)
	assert.Equal(t, "at Acme", exp.Detail)
	assert.Equal(t, "2020 – 2023", exp.Meta)

	edu := p.Sections[2].Items[0]
	assert.Equal(t, "BSc in CS", edu.Heading)
	assert.Equal(t, "– State", edu.Detail)
}

func TestBuildPreviewKeepsExperienceOrder(t *testing.T) {
	p := BuildPreview(resumes.Resume{
		Experience: []resumes.Experience{
			{Title: "Senior Engineer", Company: "Acme"},
			{Title: "Engineer", Company: "Globex"},
			{Title: "Intern", Company: "Initech"},
		},
	})

	require.Len(t, p.Sections, 1)
	require.Len(t, p.Sections[0].Items, 3)
	assert.Equal(t, "Senior Engineer", p.Sections[0].Items[0].Heading)
	assert.Equal(t, "Engineer", p.Sections[0].Items[1].Heading)
	assert.Equal(t, "Intern", p.Sections[0].Items[2].Heading)
}

func TestBuildPreviewUnknownTemplateFallsBack(t *testing.T) {
	p := BuildPreview(resumes.Resume{Template: "brutalist"})
	assert.Equal(t, "classic", p.Style.ID)
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, SplitSkills("A, B ,C,"))
	assert.Nil(t, SplitSkills(""))
	assert.Nil(t, SplitSkills(" , ,"))
}

func TestSplitParagraphs(t *testing.T) {
	got := SplitParagraphs("Para1\n\n\n\nPara2")
	assert.Equal(t, []string{"Para1", "Para2"}, got)

	assert.Nil(t, SplitParagraphs("   "))
}

func TestDateLine(t *testing.T) {
	ts := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "August 31, 2026", DateLine(ts))
}

func TestDegreeLineWithoutField(t *testing.T) {
	p := BuildPreview(resumes.Resume{
		Education: []resumes.Education{{Degree: "BSc", Institution: "State"}},
	})
	require.Len(t, p.Sections, 1)
	assert.Equal(t, "BSc", p.Sections[0].Items[0].Heading)
}
