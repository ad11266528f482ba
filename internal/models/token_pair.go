package models

import "time"

// TokenPair пара токенов, выдаваемая при регистрации и входе.
// Access короткоживущий, Refresh живёт дольше и служит для выпуска нового access.
type TokenPair struct {
	Access          string    `json:"access"`
	Refresh         string    `json:"refresh"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

// AuthResponse тело ответа на регистрацию и вход.
type AuthResponse struct {
	User  *User     `json:"user"`
	Token TokenPair `json:"token"`
}
