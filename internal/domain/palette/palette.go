// Package palette defines the imported palette model and the resolver that
// turns a user supplied Lospec URL into a fetchable source identifier.
package palette

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Palette is a named, ordered list of hex colors as published by Lospec.
type Palette struct {
	Name   string   `json:"name" yaml:"name" validate:"required,notblank"`
	Author string   `json:"author,omitempty" yaml:"author,omitempty"`
	Colors []string `json:"colors" yaml:"colors" validate:"required"`
}

// Clone returns a deep copy so callers can't mutate shared color slices.
func (p Palette) Clone() Palette {
	out := p
	out.Colors = append([]string(nil), p.Colors...)
	return out
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.Colors)
}

// StyleName returns the deterministic style name for the color at the
// zero-based index.
func (p Palette) StyleName(index int) string {
	return fmt.Sprintf("%s/%d", p.Name, index+1)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks the minimum shape every decoded palette must have.
func Validate(p Palette) error {
	if err := validatorInstance().Struct(p); err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}
	return nil
}

// DefaultBaseURL is the Lospec palette list endpoint.
const DefaultBaseURL = "https://lospec.com/palette-list"

// SourceID identifies a palette on the palette-hosting service.
type SourceID struct {
	Slug string
}

// URL builds the canonical JSON document URL below base. An empty base
// falls back to DefaultBaseURL.
func (s SourceID) URL(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return base + "/" + url.PathEscape(s.Slug) + ".json"
}

func (s SourceID) String() string {
	return s.Slug
}
