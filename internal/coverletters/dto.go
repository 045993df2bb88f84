package coverletters

import "time"

type letterRequest struct {
	CompanyName string `json:"companyName"`
	JobTitle    string `json:"jobTitle"`
	Content     string `json:"content"`
}

func (r letterRequest) toInput() Input {
	return Input{
		CompanyName: r.CompanyName,
		JobTitle:    r.JobTitle,
		Content:     r.Content,
	}
}

type letterResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"companyName"`
	JobTitle    string    `json:"jobTitle"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toResponse(l CoverLetter) letterResponse {
	return letterResponse{
		ID:          l.ID,
		Title:       l.Title,
		CompanyName: l.CompanyName,
		JobTitle:    l.JobTitle,
		Content:     l.Content,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toResponses(letters []CoverLetter) []letterResponse {
	out := make([]letterResponse, 0, len(letters))
	for _, l := range letters {
		out = append(out, toResponse(l))
	}
	return out
}
