package plugins

import "fmt"

// AllKinds returns all supported plugin kinds.
func AllKinds() []Kind {
	return []Kind{TravisCI, AppVeyor, Coveralls, Codecov, Documenter, GitHubPages}
}

// badgePriority is the canonical README badge ordering. Kinds listed here
// are emitted first, in this order; remaining active kinds follow in set
// insertion order. Each kind appears at most once.
var badgePriority = []Kind{TravisCI, AppVeyor, Coveralls, Codecov}

// ParseKind converts a string to a Kind, returning false if invalid.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "travis":
		return TravisCI, true
	case "appveyor":
		return AppVeyor, true
	case "coveralls":
		return Coveralls, true
	case "codecov":
		return Codecov, true
	case "documenter":
		return Documenter, true
	case "ghpages":
		return GitHubPages, true
	default:
		return "", false
	}
}

// New returns a fresh plugin instance for the given kind.
func New(kind Kind) (Plugin, error) {
	switch kind {
	case TravisCI:
		return &Travis{}, nil
	case AppVeyor:
		return &AppVeyorCI{}, nil
	case Coveralls:
		return &CoverallsCoverage{}, nil
	case Codecov:
		return &CodecovCoverage{}, nil
	case Documenter:
		return &DocumenterDocs{}, nil
	case GitHubPages:
		return &Pages{}, nil
	default:
		return nil, fmt.Errorf("unknown plugin kind: %s", kind)
	}
}

// Set is an ordered collection of plugins, at most one per kind.
// Iteration follows insertion order.
type Set struct {
	order  []Kind
	byKind map[Kind]Plugin
}

// NewSet returns an empty plugin set.
func NewSet() *Set {
	return &Set{byKind: make(map[Kind]Plugin)}
}

// Add inserts a plugin. It fails if a plugin of the same kind is already
// present.
func (s *Set) Add(p Plugin) error {
	kind := p.Kind()
	if _, exists := s.byKind[kind]; exists {
		return fmt.Errorf("plugin kind %s already registered", kind)
	}
	s.order = append(s.order, kind)
	s.byKind[kind] = p
	return nil
}

// Has reports whether a plugin of the given kind is active.
func (s *Set) Has(kind Kind) bool {
	if s == nil {
		return false
	}
	_, ok := s.byKind[kind]
	return ok
}

// Len returns the number of active plugins.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Plugins returns the active plugins in insertion order.
func (s *Set) Plugins() []Plugin {
	if s == nil {
		return nil
	}
	out := make([]Plugin, 0, len(s.order))
	for _, kind := range s.order {
		out = append(out, s.byKind[kind])
	}
	return out
}

// BadgeOrder returns the active plugins in README badge order: kinds on
// the canonical priority list first, then the rest in insertion order.
func (s *Set) BadgeOrder() []Plugin {
	if s == nil {
		return nil
	}

	prioritized := make(map[Kind]bool, len(badgePriority))
	var out []Plugin
	for _, kind := range badgePriority {
		if p, ok := s.byKind[kind]; ok {
			out = append(out, p)
			prioritized[kind] = true
		}
	}
	for _, kind := range s.order {
		if !prioritized[kind] {
			out = append(out, s.byKind[kind])
		}
	}
	return out
}

// NeedsPagesBranch reports whether any active plugin publishes through a
// dedicated gh-pages branch.
func (s *Set) NeedsPagesBranch() bool {
	return s.Has(GitHubPages)
}
