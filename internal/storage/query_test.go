package storage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/car-inventory/internal/models"
)

func TestBuildListQuery(t *testing.T) {
	brand := "Toyota"
	year := 2018
	price := decimal.RequireFromString("100.50")

	tests := []struct {
		name      string
		filter    models.CarFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "без фильтров",
			filter:    models.CarFilter{},
			wantQuery: "SELECT " + carColumns + " FROM cars ORDER BY id ASC",
			wantArgs:  nil,
		},
		{
			name:      "равенство по нескольким полям",
			filter:    models.CarFilter{Brand: &brand, Year: &year, Price: &price},
			wantQuery: "SELECT " + carColumns + " FROM cars WHERE brand = $1 AND year = $2 AND price = $3 ORDER BY id ASC",
			wantArgs:  []any{"Toyota", 2018, price},
		},
		{
			name:      "поиск по словам",
			filter:    models.CarFilter{Search: "land 100%"},
			wantQuery: "SELECT " + carColumns + " FROM cars WHERE (brand ILIKE $1 OR model ILIKE $1) AND (brand ILIKE $2 OR model ILIKE $2) ORDER BY id ASC",
			wantArgs:  []any{"%land%", `%100\%%`},
		},
		{
			name: "сортировка с неизвестным полем",
			filter: models.CarFilter{Ordering: []models.OrderField{
				{Column: "year", Desc: true},
				{Column: "password_hash"},
				{Column: "brand"},
			}},
			wantQuery: "SELECT " + carColumns + " FROM cars ORDER BY year DESC, brand ASC, id ASC",
			wantArgs:  nil,
		},
		{
			name:      "сортировка по id по убыванию",
			filter:    models.CarFilter{Ordering: []models.OrderField{{Column: "id", Desc: true}}},
			wantQuery: "SELECT " + carColumns + " FROM cars ORDER BY id DESC",
			wantArgs:  nil,
		},
		{
			name:      "пагинация",
			filter:    models.CarFilter{Brand: &brand, Limit: 10, Offset: 20},
			wantQuery: "SELECT " + carColumns + " FROM cars WHERE brand = $1 ORDER BY id ASC LIMIT $2 OFFSET $3",
			wantArgs:  []any{"Toyota", 10, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filter)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
