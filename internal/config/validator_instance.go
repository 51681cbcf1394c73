package config

import (
	"errors"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/framecolors/internal/palette"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
	fcerrors "github.com/alexisbeaulieu97/framecolors/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	rgbHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("rgb_hex", func(fl validator.FieldLevel) bool {
			return rgbHexPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color_source", func(fl validator.FieldLevel) bool {
			return workspace.Source(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("coloring_style", func(fl validator.FieldLevel) bool {
			return palette.Style(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("apply_scope", func(fl validator.FieldLevel) bool {
			return workspace.ApplyScope(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// rule returns a setting validator that checks values against tag.
func rule[T any](name, tag string) func(T) error {
	return func(value T) error {
		if err := validatorInstance().Var(value, tag); err != nil {
			return convertValidationError(name, value, err)
		}
		return nil
	}
}

func convertValidationError(name string, value any, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return fcerrors.NewValidationError(name, ves[0].Tag(), value, err)
	}
	return fcerrors.NewValidationError(name, "", value, err)
}
