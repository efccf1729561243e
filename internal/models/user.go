// Package models contains data structures for the application's domain models.
package models

// User represents a registered account as returned by the auth endpoints.
// The password hash never leaves the server.
type User struct {
	ID       FlexID `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// AuthResponse is the body returned by POST /register and POST /login.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// Identity is the fully-populated viewer identity held by the session store.
// A session is either fully authenticated (all fields present) or fully
// anonymous; there is no partial state.
type Identity struct {
	ID    FlexID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
