package domain

import "time"

type Customer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the persisted auth document: the remote-issued bearer token
// plus the profile fetched when it was adopted. Cart and wishlist never
// depend on it; they are anonymous and local.
type Session struct {
	Token     string    `json:"token"`
	Customer  *Customer `json:"customer"`
	AdoptedAt time.Time `json:"adoptedAt"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginResult is what the remote auth endpoint returns on success.
type LoginResult struct {
	Token    string    `json:"token"`
	Customer *Customer `json:"customer"`
}
