package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// Ограничения полей автомобиля.
const (
	MinYear          = 1886
	MaxStringLength  = 100
	PriceMaxDigits   = 10
	PriceDecimalPart = 2
	// MaxInteger верхняя граница целых полей, колонки INTEGER в PostgreSQL.
	MaxInteger = math.MaxInt32
)

// Ошибки правил полей автомобиля.
var (
	ErrYearTooEarly     = fmt.Errorf("year cannot be earlier than %d.", MinYear)
	ErrPriceNotPositive = errors.New("price must be a positive number.")
	ErrPricePrecision   = fmt.Errorf("ensure that there are no more than %d decimal places.", PriceDecimalPart)
	ErrPriceDigits      = fmt.Errorf("ensure that there are no more than %d digits in total.", PriceMaxDigits)
	ErrMileageNegative  = errors.New("mileage cannot be negative.")
	ErrIntegerTooLarge  = fmt.Errorf("ensure this value is less than or equal to %d.", MaxInteger)
)

// ValidateYear проверяет год выпуска.
func ValidateYear(year int) error {
	if year < MinYear {
		return ErrYearTooEarly
	}
	if year > MaxInteger {
		return ErrIntegerTooLarge
	}
	return nil
}

// ValidatePrice проверяет цену: строго положительная, не больше 10 цифр, 2 знака после точки.
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrPriceNotPositive
	}
	if !price.Equal(price.Truncate(PriceDecimalPart)) {
		return ErrPricePrecision
	}
	limit := decimal.New(1, PriceMaxDigits-PriceDecimalPart)
	if price.GreaterThanOrEqual(limit) {
		return ErrPriceDigits
	}
	return nil
}

// ValidateMileage проверяет пробег.
func ValidateMileage(mileage int) error {
	if mileage < 0 {
		return ErrMileageNegative
	}
	if mileage > MaxInteger {
		return ErrIntegerTooLarge
	}
	return nil
}

type carRules struct {
	Brand        string `json:"brand" validate:"required,max=100"`
	Model        string `json:"model" validate:"required,max=100"`
	FuelType     string `json:"fuel_type" validate:"required,oneof=Petrol Diesel Electric Hybrid"`
	Transmission string `json:"transmission" validate:"required,oneof=Manual Automatic CVT Robot"`
}

// CarValidator проверяет автомобиль перед сохранением.
type CarValidator struct {
	validate *validator.Validate
}

// NewCarValidator создаёт CarValidator.
func NewCarValidator() *CarValidator {
	return &CarValidator{validate: New()}
}

// Validate проверяет все поля автомобиля и возвращает все нарушения.
// Пустой результат означает, что автомобиль можно сохранять.
func (v *CarValidator) Validate(car models.Car) FieldErrors {
	errs := Struct(v.validate, carRules{
		Brand:        strings.TrimSpace(car.Brand),
		Model:        strings.TrimSpace(car.Model),
		FuelType:     string(car.FuelType),
		Transmission: string(car.Transmission),
	})

	if err := ValidateYear(car.Year); err != nil {
		errs.Add("year", err.Error())
	}
	if err := ValidatePrice(car.Price); err != nil {
		errs.Add("price", err.Error())
	}
	if err := ValidateMileage(car.Mileage); err != nil {
		errs.Add("mileage", err.Error())
	}
	return errs
}

// Required проверяет наличие обязательных полей в запросе на создание
// или полное обновление. year и mileage имеют значения по умолчанию.
func Required(d models.DummyCar) FieldErrors {
	errs := FieldErrors{}
	const msg = "this field is required."
	if d.Brand == nil {
		errs.Add("brand", msg)
	}
	if d.Model == nil {
		errs.Add("model", msg)
	}
	if d.Price == nil {
		errs.Add("price", msg)
	}
	if d.FuelType == nil {
		errs.Add("fuel_type", msg)
	}
	if d.Transmission == nil {
		errs.Add("transmission", msg)
	}
	return errs
}
