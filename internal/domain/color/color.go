// Package color converts palette hex strings into normalized RGB values.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedHex is the sentinel wrapped by every ConversionError.
var ErrMalformedHex = errors.New("malformed hex color")

// RGB holds channel values normalized to the 0.0–1.0 range.
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// ConversionError reports a hex string that could not be converted.
type ConversionError struct {
	Value  string
	Reason string
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("convert %q: %s", e.Value, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrMalformedHex).
func (e *ConversionError) Unwrap() error {
	return ErrMalformedHex
}

// Convert parses a six digit hex color. A leading '#' and surrounding
// whitespace are ignored; digits are case-insensitive.
func Convert(hex string) (RGB, error) {
	value := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch {
	case value == "":
		return RGB{}, &ConversionError{Value: hex, Reason: "empty value"}
	case len(value) != 6:
		return RGB{}, &ConversionError{Value: hex, Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(value))}
	}

	var channels [3]float64
	for i := range channels {
		n, err := strconv.ParseUint(value[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &ConversionError{Value: hex, Reason: "non-hex character"}
		}
		channels[i] = float64(n) / 255
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Bytes returns the channels scaled to 0–255.
func (c RGB) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// Hex renders the color as upper-case RRGGBB without a leading '#'.
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

func toByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}
