package importer

import (
	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
)

// Phase is the orchestrator's top-level state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is everything the presentation layer needs to render. Values are
// immutable snapshots; Version increases by one per transition so
// observers can drop snapshots that arrive out of order.
type State struct {
	Version uint64
	Phase   Phase
	// Input is the current URL text.
	Input string
	// Slug is the palette being fetched or last fetched.
	Slug string
	// Message is the error banner text; set only in PhaseError.
	Message string
	// Palette is the summary shown during PhaseSuccess.
	Palette *palette.Palette
}

// Busy reports whether a fetch is in flight.
func (s State) Busy() bool {
	return s.Phase == PhaseFetching
}

func (s State) next() State {
	s.Version++
	return s
}

// The functions below are the complete transition table.

func edited(s State, text string) State {
	s = s.next()
	s.Input = text
	return s
}

func rejected(s State, message string) State {
	s = s.next()
	s.Phase = PhaseError
	s.Message = message
	s.Palette = nil
	return s
}

func fetching(s State, id palette.SourceID) State {
	s = s.next()
	s.Phase = PhaseFetching
	s.Slug = id.Slug
	s.Message = ""
	s.Palette = nil
	return s
}

func fetched(s State, p palette.Palette) State {
	s = s.next()
	s.Phase = PhaseSuccess
	s.Input = ""
	s.Message = ""
	shown := p.Clone()
	s.Palette = &shown
	return s
}

func failed(s State, message string) State {
	s = s.next()
	s.Phase = PhaseError
	s.Message = message
	s.Palette = nil
	return s
}

// expired ends a display window or dismisses an error banner.
func expired(s State) State {
	s = s.next()
	s.Phase = PhaseIdle
	s.Message = ""
	s.Palette = nil
	return s
}
