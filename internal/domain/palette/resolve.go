package palette

import (
	"fmt"
	"strings"
)

// SourcePrefix is the only accepted palette URL prefix.
const SourcePrefix = "https://lospec.com/palette-list/"

// Reason classifies why a URL could not be resolved.
type Reason string

const (
	ReasonEmpty       Reason = "empty"
	ReasonWrongHost   Reason = "wrong-host"
	ReasonMissingSlug Reason = "missing-slug"
)

// Messages shown to the user for each resolution failure.
const (
	MessageEmptyURL   = "Enter a valid Lospec palette URL."
	MessageInvalidURL = "Please enter a valid Lospec palette URL."
)

// ResolutionError reports an unusable palette URL.
type ResolutionError struct {
	Reason Reason
	URL    string
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("resolve palette url %q: %s", e.URL, e.Reason)
}

// Is matches another ResolutionError with the same reason.
func (e *ResolutionError) Is(target error) bool {
	other, ok := target.(*ResolutionError)
	if !ok || e == nil || other == nil {
		return false
	}
	return e.Reason == other.Reason
}

// UserMessage is the banner text for this failure.
func (e *ResolutionError) UserMessage() string {
	if e != nil && e.Reason == ReasonEmpty {
		return MessageEmptyURL
	}
	return MessageInvalidURL
}

// Resolve validates raw and extracts the palette slug from its last path
// segment. Query strings and fragments are ignored and a trailing ".json"
// is stripped.
func Resolve(raw string) (SourceID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SourceID{}, &ResolutionError{Reason: ReasonEmpty, URL: raw}
	}
	if !strings.HasPrefix(trimmed, SourcePrefix) {
		return SourceID{}, &ResolutionError{Reason: ReasonWrongHost, URL: raw}
	}

	path := trimmed
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	slug := path[strings.LastIndex(path, "/")+1:]
	slug = strings.TrimSuffix(slug, ".json")
	if slug == "" {
		return SourceID{}, &ResolutionError{Reason: ReasonMissingSlug, URL: raw}
	}

	return SourceID{Slug: slug}, nil
}
