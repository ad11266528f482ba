package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UUID         string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Identity данные о пользователе, которые переносятся в токенах и в контексте запроса.
type Identity struct {
	UserUID  string
	Username string
}

// Identity возвращает идентичность пользователя для выпуска токенов.
func (u User) Identity() Identity {
	return Identity{UserUID: u.UUID, Username: u.Username}
}
