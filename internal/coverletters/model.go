package coverletters

import "time"

// CoverLetter is a saved letter owned by a user. Title is denormalized as
// "{company} - {job title}" at write time.
type CoverLetter struct {
	ID          string
	UserID      string
	Title       string
	CompanyName string
	JobTitle    string
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
