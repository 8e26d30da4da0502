package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/saadjs/bodymetrics-cli/internal/model"
)

// ErrInvalidInput is returned (wrapped) for every missing or invalid argument.
var ErrInvalidInput = model.ErrInvalidInput

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return isFinite(fl.Field().Float())
	}); err != nil {
		panic(fmt.Sprintf("register finite validation: %v", err))
	}
	return v
}

// validateInput reports the first failing field of in as ErrInvalidInput.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return invalidInput("%s", describeFieldError(fieldErrs[0]))
}

func describeFieldError(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " not provided"
	case "finite":
		return name + " must be a finite number"
	case "gt":
		if v, ok := fe.Value().(float64); ok && v == 0 {
			return name + " not provided"
		}
		return fmt.Sprintf("%s must be > %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", name, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have %s values", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validatePositive(name string, value float64) error {
	if value == 0 {
		return invalidInput("%s not provided", name)
	}
	if !isFinite(value) || value < 0 {
		return invalidInput("%s must be > 0", name)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundToTwoDecimal rounds the exact binary value of v half away from zero
// at the second decimal place, so 1.005 (stored as 1.00499...) gives 1.00.
// 40 fractional digits are enough to keep every float64 off a false tie.
func roundToTwoDecimal(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	exact := decimal.RequireFromString(strconv.FormatFloat(v, 'f', 40, 64))
	return exact.Round(2).InexactFloat64()
}
