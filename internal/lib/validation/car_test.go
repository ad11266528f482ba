package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/car-inventory/internal/models"
)

func validCar() models.Car {
	return models.Car{
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2015,
		Price:        decimal.RequireFromString("10000.00"),
		FuelType:     models.FuelPetrol,
		Transmission: models.TransmissionAutomatic,
		Mileage:      120000,
	}
}

func TestValidateYear(t *testing.T) {
	for _, y := range []int{-1, 0, 1000, 1884, 1885} {
		assert.ErrorIs(t, ValidateYear(y), ErrYearTooEarly, "year %d", y)
	}
	for _, y := range []int{1886, 1887, 2000, 2024, 3000, math.MaxInt32} {
		assert.NoError(t, ValidateYear(y), "year %d", y)
	}
	assert.ErrorIs(t, ValidateYear(math.MaxInt32+1), ErrIntegerTooLarge)
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		price string
		want  error
	}{
		{"-100", ErrPriceNotPositive},
		{"-0.01", ErrPriceNotPositive},
		{"0", ErrPriceNotPositive},
		{"0.00", ErrPriceNotPositive},
		{"0.01", nil},
		{"1", nil},
		{"10000", nil},
		{"99999999.99", nil},
		{"100000000", ErrPriceDigits},
		{"10.123", ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			err := ValidatePrice(decimal.RequireFromString(tt.price))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateMileage(t *testing.T) {
	for _, m := range []int{-1000, -1} {
		assert.ErrorIs(t, ValidateMileage(m), ErrMileageNegative)
	}
	for _, m := range []int{0, 1, 250000, math.MaxInt32} {
		assert.NoError(t, ValidateMileage(m))
	}
	assert.ErrorIs(t, ValidateMileage(math.MaxInt32+1), ErrIntegerTooLarge)
}

func TestCarValidator_IntegerOverflow(t *testing.T) {
	car := validCar()
	car.Year = math.MaxInt32 + 1
	car.Mileage = math.MaxInt32 + 1

	errs := NewCarValidator().Validate(car)
	require.Len(t, errs, 2)
	assert.Equal(t, []string{"ensure this value is less than or equal to 2147483647."}, errs["year"])
	assert.Equal(t, []string{"ensure this value is less than or equal to 2147483647."}, errs["mileage"])

	car.Year = math.MaxInt32
	car.Mileage = math.MaxInt32
	assert.Empty(t, NewCarValidator().Validate(car))
}

func TestCarValidator_Valid(t *testing.T) {
	v := NewCarValidator()
	errs := v.Validate(validCar())
	assert.Empty(t, errs)
	assert.NoError(t, errs.Err())
}

func TestCarValidator_CollectsAllErrors(t *testing.T) {
	v := NewCarValidator()

	car := validCar()
	car.Brand = ""
	car.Year = 1885
	car.Price = decimal.Zero
	car.Mileage = -5
	car.FuelType = "Steam"
	car.Transmission = "Sequential"

	errs := v.Validate(car)
	require.Error(t, errs.Err())

	for _, field := range []string{"brand", "year", "price", "mileage", "fuel_type", "transmission"} {
		assert.True(t, errs.Has(field), "expected error for %s", field)
	}
	assert.False(t, errs.Has("model"))
	assert.Equal(t, []string{ErrYearTooEarly.Error()}, errs["year"])
	assert.Equal(t, []string{`"Steam" is not a valid choice.`}, errs["fuel_type"])
}

func TestCarValidator_TooLongStrings(t *testing.T) {
	v := NewCarValidator()

	car := validCar()
	car.Model = strings.Repeat("x", 101)

	errs := v.Validate(car)
	assert.Equal(t, []string{"ensure this field has no more than 100 characters."}, errs["model"])
}

func TestRequired(t *testing.T) {
	errs := Required(models.DummyCar{})
	for _, field := range []string{"brand", "model", "price", "fuel_type", "transmission"} {
		assert.True(t, errs.Has(field), field)
	}
	assert.False(t, errs.Has("year"))
	assert.False(t, errs.Has("mileage"))

	brand, model, fuel, tr := "BMW", "X5", "Diesel", "Automatic"
	price := decimal.RequireFromString("55000")
	errs = Required(models.DummyCar{Brand: &brand, Model: &model, Price: &price, FuelType: &fuel, Transmission: &tr})
	assert.Empty(t, errs)
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("year", "bad year.")
	errs.Add("brand", "required.")
	errs.Add("brand", "too long.")

	assert.Equal(t, "validation failed: brand: required. too long.; year: bad year.", errs.Error())
	assert.Nil(t, FieldErrors{}.Err())
}
