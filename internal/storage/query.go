package storage

import (
	"fmt"
	"strings"

	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// OrderableColumns поля, по которым разрешена сортировка списка.
var OrderableColumns = map[string]struct{}{
	"id": {}, "brand": {}, "model": {}, "year": {}, "price": {},
	"fuel_type": {}, "transmission": {}, "mileage": {},
}

// buildListQuery собирает SELECT с фильтрами, поиском, сортировкой и пагинацией.
// Значения передаются только через плейсхолдеры, имена колонок берутся из белого списка.
func buildListQuery(f models.CarFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Brand != nil {
		add("brand = $%d", *f.Brand)
	}
	if f.Model != nil {
		add("model = $%d", *f.Model)
	}
	if f.Year != nil {
		add("year = $%d", *f.Year)
	}
	if f.Price != nil {
		add("price = $%d", *f.Price)
	}
	if f.FuelType != nil {
		add("fuel_type = $%d", *f.FuelType)
	}
	if f.Transmission != nil {
		add("transmission = $%d", *f.Transmission)
	}
	if f.Mileage != nil {
		add("mileage = $%d", *f.Mileage)
	}
	for _, term := range strings.Fields(f.Search) {
		args = append(args, "%"+escapeLike(term)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(brand ILIKE $%d OR model ILIKE $%d)", n, n))
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + carColumns + " FROM cars")
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY " + orderClause(f.Ordering))

	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return sb.String(), args
}

func orderClause(fields []models.OrderField) string {
	parts := make([]string, 0, len(fields)+1)
	hasID := false
	for _, f := range fields {
		if _, ok := OrderableColumns[f.Column]; !ok {
			continue
		}
		dir := "ASC"
		if f.Desc {
			dir = "DESC"
		}
		parts = append(parts, f.Column+" "+dir)
		if f.Column == "id" {
			hasID = true
		}
	}
	// id как последний ключ делает порядок детерминированным.
	if !hasID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", ")
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
