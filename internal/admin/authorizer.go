package admin

import "strings"

// Authorizer decides whether an authenticated user may use the admin surface.
type Authorizer interface {
	Allowed(email string) bool
}

// EmailAllowList authorizes by exact email membership, case-insensitive.
// An empty list denies everyone.
type EmailAllowList struct {
	emails map[string]struct{}
}

func NewEmailAllowList(emails []string) *EmailAllowList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return &EmailAllowList{emails: set}
}

func (a *EmailAllowList) Allowed(email string) bool {
	_, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

var _ Authorizer = (*EmailAllowList)(nil)
