package resumes

import "time"

// PersonalInfo holds the header fields of a resume. All fields are optional.
type PersonalInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Experience is one work history entry. IDs are stable list keys.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Resume is the structured document owned by a user.
type Resume struct {
	ID           string
	UserID       string
	Title        string
	Template     string
	PersonalInfo PersonalInfo
	Summary      string
	Experience   []Experience
	Education    []Education
	Skills       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
