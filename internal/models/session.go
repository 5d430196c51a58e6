package models

// SessionKey is the storage item holding the signed-in user record.
const SessionKey = "user"

// Session is the persisted `user` record written at login.
type Session struct {
	ID           int64    `json:"id,omitempty"`
	FullName     string   `json:"fullName,omitempty"`
	Username     string   `json:"username"`
	Email        string   `json:"email,omitempty"`
	Role         UserRole `json:"role"`
	ProfilePhoto string   `json:"profilePhoto,omitempty"`
	Token        string   `json:"token"`
}

// HasRole reports whether the session belongs to one of roles.
func (s *Session) HasRole(roles ...UserRole) bool {
	if s == nil {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
