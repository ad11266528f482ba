package models

import "github.com/shopspring/decimal"

// CarFilter параметры выборки списка автомобилей.
// nil-поля не участвуют в фильтрации.
type CarFilter struct {
	Brand        *string
	Model        *string
	Year         *int
	Price        *decimal.Decimal
	FuelType     *string
	Transmission *string
	Mileage      *int
	Search       string
	Ordering     []OrderField
	Limit        int
	Offset       int
}

// OrderField поле сортировки.
type OrderField struct {
	Column string
	Desc   bool
}
