package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aldenjg/cornharvest/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("action", validateAction)
	_ = v.RegisterValidation("item", validateItem)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "action":
			errs[field] = unknownChoiceMessage("action", e.Value(), actionNames())
		case "item":
			errs[field] = unknownChoiceMessage("item", e.Value(), itemNames())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateAction(fl validator.FieldLevel) bool {
	a, err := domain.ParseActionKind(fl.Field().String())
	return err == nil && a != domain.ActionNone
}

func validateItem(fl validator.FieldLevel) bool {
	_, err := domain.ParseItemKind(fl.Field().String())
	return err == nil
}

func actionNames() []string {
	return []string{
		string(domain.ActionPlant),
		string(domain.ActionWater),
		string(domain.ActionHarvest),
		string(domain.ActionFertilize),
		string(domain.ActionProtect),
	}
}

func itemNames() []string {
	kinds := domain.ItemKinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
