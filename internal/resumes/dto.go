package resumes

import "time"

type resumeRequest struct {
	Template     string       `json:"template"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       string       `json:"skills"`
}

type resumeResponse struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Title        string       `json:"title"`
	Template     string       `json:"template"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       string       `json:"skills"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func toInput(req resumeRequest) Input {
	return Input{
		Template:     req.Template,
		PersonalInfo: req.PersonalInfo,
		Summary:      req.Summary,
		Experience:   req.Experience,
		Education:    req.Education,
		Skills:       req.Skills,
	}
}

func toResponse(r Resume) resumeResponse {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	return resumeResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		Template:     r.Template,
		PersonalInfo: r.PersonalInfo,
		Summary:      r.Summary,
		Experience:   r.Experience,
		Education:    r.Education,
		Skills:       r.Skills,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
