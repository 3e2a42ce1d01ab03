package model

import "time"

// User represents an account in the users collection. PasswordHash is
// stored under the "password" key to stay compatible with the persisted
// data layout; it must never leave the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// User roles. Authorization beyond authenticated-vs-not is not enforced;
// the role is informational.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Public strips credential material for API responses.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// PublicUser is the client-safe view of a User.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserClaims is the request-scoped identity extracted from a verified
// bearer token. It is passed explicitly into repository and engine calls;
// nothing in the core holds session state.
type UserClaims struct {
	UserID   string
	Username string
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the payload for POST /api/auth/login. Username accepts
// either the username or the email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
