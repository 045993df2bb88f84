package generate

import "fmt"

// SystemPrompt frames every generation request.
const SystemPrompt = "You are an expert resume writer and career coach. You write clear, impactful, ATS-optimized content. Always be concise and professional."

// BuildPrompt renders the user prompt for a generation kind. Missing context
// fields get neutral defaults so every kind works with a partial context.
func BuildPrompt(kind string, gc Context) (string, error) {
	jobTitle := gc.JobTitle
	if jobTitle == "" {
		jobTitle = "professional"
	}

	switch kind {
	case KindSummary:
		return fmt.Sprintf(`Write a professional resume summary (2-3 sentences) for a %s.
Make it impactful, results-oriented, and ATS-friendly.
Focus on value proposition and key strengths.
Do not use first person pronouns.
Return only the summary text, no quotes or extra formatting.`, jobTitle), nil

	case KindExperience:
		return fmt.Sprintf(`Write 3-4 impactful bullet points for a %s position at %s.
Context: %s

Requirements:
- Start each bullet with a strong action verb
- Include metrics and quantifiable achievements where possible
- Be specific and results-oriented
- Keep each bullet to 1-2 lines
- Make them ATS-friendly

Return only the bullet points, each on a new line starting with •`, jobTitle, gc.Company, gc.Experience), nil

	case KindSkills:
		return fmt.Sprintf(`Suggest 10-15 relevant skills for a %s position.
Include both technical and soft skills.
Focus on in-demand, ATS-friendly keywords.
Return as a comma-separated list, no extra formatting.`, jobTitle), nil

	case KindImprove:
		return fmt.Sprintf(`Improve the following resume text to be more impactful, professional, and ATS-friendly.
Keep the same meaning but make it stronger.

Original text: %s

Return only the improved text, no explanations.`, gc.Text), nil

	case KindCoverLetter:
		return fmt.Sprintf(`Write a professional cover letter for a %s position at %s.

Candidate background:
- Current/Recent role: %s
- Key skills: %s
- Experience highlights: %s

Requirements:
- 3-4 paragraphs
- Professional but personable tone
- Highlight relevant experience and skills
- Show enthusiasm for the role
- Include a strong call to action

Return only the cover letter body (no greeting or signature).`, gc.TargetJob, gc.Company, jobTitle, gc.Skills, gc.Experience), nil

	case KindLinkedInHead:
		return fmt.Sprintf(`Write 3 compelling LinkedIn headline options for a %s.
Each should be under 120 characters.
Make them keyword-rich and attention-grabbing.
Return each option on a new line, numbered 1-3.`, jobTitle), nil

	case KindLinkedInSummary:
		return fmt.Sprintf(`Write a LinkedIn About section (200-300 words) for a %s.

Make it:
- First person, conversational but professional
- Include relevant keywords for SEO
- Highlight unique value proposition
- End with a call to action

Return only the summary text.`, jobTitle), nil

	default:
		return "", ErrUnknownKind
	}
}
