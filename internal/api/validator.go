package api

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	app_errors "ollama-ui/internal/errors"
	"ollama-ui/internal/model"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getInstance returns the shared validator, with the poemstyle rule
// registered on first use.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("poemstyle", func(fl validator.FieldLevel) bool {
			return slices.Contains(model.PoemStyles, fl.Field().String())
		}); err != nil {
			panic(err)
		}
	})
	return validate
}

// validateRequest checks payload against its validate tags and returns an
// error wrapping app_errors.ErrValidation that names every failing field.
func validateRequest(payload interface{}) error {
	err := getInstance().Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		errorMessages = append(errorMessages, describe(fieldErr))
	}
	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	case "poemstyle":
		return fmt.Sprintf("%s must be one of %s", fieldErr.Field(), strings.Join(model.PoemStyles, ", "))
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
	}
}
