package models

import "time"

// Session is the client's persisted login: the access token and the user
// it was issued for.
type Session struct {
	Token   string
	User    User
	SavedAt time.Time
}

// IsZero reports whether no session is stored.
func (s Session) IsZero() bool {
	return s.Token == ""
}
