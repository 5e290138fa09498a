package lospec

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure.
type Kind string

const (
	KindNotFound Kind = "not_found"
	KindHTTP     Kind = "http"
	KindNetwork  Kind = "network"
)

// Messages shown to the user for each fetch failure.
const (
	MessageNotFound = "Palette not found. Please check the URL and try again."
	MessageNetwork  = "Failed to fetch the palette. Please check the URL or try again later."
)

// ErrFetch is the sentinel wrapped by every FetchError.
var ErrFetch = errors.New("palette fetch failed")

// FetchError reports why a palette could not be retrieved.
type FetchError struct {
	Kind       Kind
	Status     int
	StatusText string
	Slug       string
	Err        error
}

func (e *FetchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindNotFound, KindHTTP:
		return fmt.Sprintf("fetch palette %q: http %d %s", e.Slug, e.Status, e.StatusText)
	default:
		if e.Err != nil {
			return fmt.Sprintf("fetch palette %q: %v", e.Slug, e.Err)
		}
		return fmt.Sprintf("fetch palette %q: network failure", e.Slug)
	}
}

// Unwrap exposes the underlying cause, or ErrFetch when there is none.
func (e *FetchError) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Err != nil {
		return []error{ErrFetch, e.Err}
	}
	return []error{ErrFetch}
}

// UserMessage is the banner text for this failure.
func (e *FetchError) UserMessage() string {
	if e == nil {
		return MessageNetwork
	}
	switch e.Kind {
	case KindNotFound:
		return MessageNotFound
	case KindHTTP:
		return fmt.Sprintf("Error %d: %s.", e.Status, e.StatusText)
	default:
		return MessageNetwork
	}
}
