package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return swatcherrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	if cfg.UI.ErrorDismiss > cfg.UI.DisplayWindow {
		return swatcherrors.NewValidationError("ui.error_dismiss", "must not exceed ui.display_window", nil)
	}
	return nil
}

// convertValidationError normalizes validator errors into swatchbook validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Source.BaseURL into source.base_url.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snake(part)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
