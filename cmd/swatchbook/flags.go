package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
)

type createStylesOptions struct {
	Name   string
	Colors []string
}

func validateCreateStylesOptions(opts createStylesOptions) error {
	if strings.TrimSpace(opts.Name) == "" {
		return fmt.Errorf("--name is required")
	}
	if len(opts.Colors) == 0 {
		return fmt.Errorf("at least one hex color is required")
	}
	return nil
}

// checkHexes reports the first malformed color so the command can fail
// before touching the document. Materialization would abort on it anyway,
// after writing the colors before it.
func checkHexes(colors []string) error {
	for i, hex := range colors {
		if _, err := color.Convert(hex); err != nil {
			return fmt.Errorf("color %d: %w", i+1, err)
		}
	}
	return nil
}
