package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// ProfileUpdate carries the mutable profile fields. A nil Phone leaves the
// stored phone untouched, an empty Name is ignored.
type ProfileUpdate struct {
	Name  string
	Phone *string
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Identity is the decoded token subject attached to authenticated requests.
type Identity struct {
	UserID string
	Email  string
}

type AuthResult struct {
	User  *User
	Token string
}
