package models

import "time"

// Ключи маршрутизации событий инвентаря.
const (
	EventCarCreated     = "car.created"
	EventCarUpdated     = "car.updated"
	EventCarDeleted     = "car.deleted"
	EventUserRegistered = "user.registered"
)

// CarEvent сообщение об изменении записи автомобиля.
type CarEvent struct {
	Type       string    `json:"type"`
	CarID      int64     `json:"car_id"`
	Car        *Car      `json:"car,omitempty"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}

// UserEvent сообщение о регистрации пользователя.
type UserEvent struct {
	Type       string    `json:"type"`
	UserUID    string    `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
