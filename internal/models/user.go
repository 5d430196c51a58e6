package models

// UserRole is the Spring Security authority attached to a user.
type UserRole string

const (
	RoleAdmin    UserRole = "ROLE_ADMIN"
	RoleStudent  UserRole = "ROLE_STUDENT"
	RoleDelegate UserRole = "ROLE_DELEGATE"
)

// User is the profile returned by /users/me and the profile endpoints.
type User struct {
	ID           int64    `json:"id"`
	FullName     string   `json:"fullName"`
	Username     string   `json:"username"`
	Email        string   `json:"email,omitempty"`
	Role         UserRole `json:"role"`
	Department   string   `json:"department,omitempty"`
	Year         string   `json:"year,omitempty"`
	ProfilePhoto string   `json:"profilePhoto,omitempty"`
}

// UpdateProfileRequest is the JSON body of PUT /users/profile.
type UpdateProfileRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Department string `json:"department,omitempty"`
	Year       string `json:"year,omitempty"`
}

// UserSummary identifies a conversation participant.
type UserSummary struct {
	ID           int64    `json:"id"`
	FullName     string   `json:"fullName"`
	Username     string   `json:"username"`
	Role         UserRole `json:"role,omitempty"`
	ProfilePhoto string   `json:"profilePhoto,omitempty"`
}
