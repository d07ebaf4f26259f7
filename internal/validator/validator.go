// Package validator checks service inputs against their declarative `validate`
// tags and reports every failing field, keyed by its JSON name.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"finwallet/internal/ledger"
	"finwallet/internal/models"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		_ = validate.RegisterValidation("amount", validateAmount)
		_ = validate.RegisterValidation("calendar_date", validateCalendarDate)
		_ = validate.RegisterValidation("transaction_type", validateTransactionType)
	})
	return validate
}

// Struct validates v and returns a map of JSON field name to reason for every
// failing field. An empty map means v is valid.
func Struct(v any) map[string]string {
	fields := make(map[string]string)

	err := engine().Struct(v)
	if err == nil {
		return fields
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = message(fe)
	}
	return fields
}

// TypeMessage is the reason reported for a field whose JSON value is not of
// the expected kind.
func TypeMessage(field, kind string) string {
	return fmt.Sprintf("The %s field must be a %s.", strings.ReplaceAll(field, "_", " "), kind)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "transaction_type", "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "amount":
		return fmt.Sprintf("The %s field must be a number greater than 0 with at most 2 decimal places.", field)
	case "calendar_date":
		return fmt.Sprintf("The %s field must be a valid date.", field)
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}

func validateAmount(fl validator.FieldLevel) bool {
	_, err := ledger.ParseAmount(fl.Field().String())
	return err == nil
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ledger.ParseDate(fl.Field().String())
	return err == nil
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}
