// Package models содержит доменные структуры сервиса: автомобиль, пользователя,
// пару токенов, а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FuelType тип топлива автомобиля.
type FuelType string

// Допустимые значения FuelType.
const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// Transmission тип коробки передач.
type Transmission string

// Допустимые значения Transmission.
const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionCVT       Transmission = "CVT"
	TransmissionRobot     Transmission = "Robot"
)

// Значения по умолчанию для полей, не переданных при создании.
const (
	DefaultYear    = 2000
	DefaultMileage = 1
)

// Car запись об автомобиле в инвентаре.
// ID назначается хранилищем при создании.
type Car struct {
	ID           int64           `json:"id"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Price        decimal.Decimal `json:"price"`
	FuelType     FuelType        `json:"fuel_type"`
	Transmission Transmission    `json:"transmission"`
	Mileage      int             `json:"mileage"`
}

// DummyCar принимает данные автомобиля из JSON-запроса.
// Поля-указатели позволяют отличить отсутствующее поле от нулевого значения,
// что нужно для частичного обновления.
type DummyCar struct {
	Brand        *string          `json:"brand,omitempty"`
	Model        *string          `json:"model,omitempty"`
	Year         *int             `json:"year,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty" swaggertype:"string" example:"10000.00"`
	FuelType     *string          `json:"fuel_type,omitempty" example:"Petrol"`
	Transmission *string          `json:"transmission,omitempty" example:"Manual"`
	Mileage      *int             `json:"mileage,omitempty"`
}

// Apply переносит заданные поля запроса на автомобиль.
func (d DummyCar) Apply(car *Car) {
	if d.Brand != nil {
		car.Brand = strings.TrimSpace(*d.Brand)
	}
	if d.Model != nil {
		car.Model = strings.TrimSpace(*d.Model)
	}
	if d.Year != nil {
		car.Year = *d.Year
	}
	if d.Price != nil {
		car.Price = *d.Price
	}
	if d.FuelType != nil {
		car.FuelType = FuelType(*d.FuelType)
	}
	if d.Transmission != nil {
		car.Transmission = Transmission(*d.Transmission)
	}
	if d.Mileage != nil {
		car.Mileage = *d.Mileage
	}
}

// NewCar возвращает автомобиль со значениями по умолчанию.
func NewCar() Car {
	return Car{
		Year:    DefaultYear,
		Mileage: DefaultMileage,
	}
}
