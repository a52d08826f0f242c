// SPDX-License-Identifier: MPL-2.0

package argdef

import (
	"golang.org/x/exp/slices"
)

// Set owns all Definitions for one invocation plus the derived indices the
// resolver consults. A Set is sealed on construction: nothing mutates it
// afterwards, so it can be shared freely between the matcher, the resolver,
// and the help renderer.
type Set struct {
	defs     []*Definition
	settings Settings

	byFlag    map[string]*Definition
	ordinals  []*Definition
	catchAlls []*Definition
}

// NewSet validates every definition, enforces the cross-definition invariants
// (unique names, unique flag tokens), derives the lookup indices, and seals
// the result.
func NewSet(defs []*Definition, settings Settings) (*Set, error) {
	byFlag := make(map[string]*Definition)
	byName := make(map[string]*Definition, len(defs))

	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}

		if other := byName[def.Name]; other != nil {
			return nil, Definitionf("more than one argument is named %s", def.Name)
		}
		byName[def.Name] = def

		for _, flag := range append(slices.Clone(def.Flags), def.NegativeFlags...) {
			if other := byFlag[flag]; other != nil {
				return nil, Definitionf("flag %s is declared by both %s and %s", flag, other.Name, def.Name)
			}
			byFlag[flag] = def
		}
	}

	s := &Set{
		defs:     defs,
		settings: settings,
		byFlag:   byFlag,
	}

	for _, def := range defs {
		if def.HasOrdinal {
			s.ordinals = append(s.ordinals, def)
		}
		if def.CatchAll {
			s.catchAlls = append(s.catchAlls, def)
		}
	}

	// Ascending ordinal order, declaration order breaking ties. SortStableFunc
	// keeps the declaration order for equal ordinals.
	slices.SortStableFunc(s.ordinals, func(a, b *Definition) int {
		return a.Ordinal - b.Ordinal
	})

	return s, nil
}

// Definitions returns the definitions in declaration order.
func (s *Set) Definitions() []*Definition {
	return slices.Clone(s.defs)
}

// Settings returns the global runtime options for this invocation.
func (s *Set) Settings() Settings {
	return s.settings
}

// Lookup returns the definition declaring the given flag token, or nil.
func (s *Set) Lookup(flag string) *Definition {
	return s.byFlag[flag]
}

// Ordinals returns the ordinal definitions in ascending ordinal order,
// declaration order breaking ties.
func (s *Set) Ordinals() []*Definition {
	return slices.Clone(s.ordinals)
}

// CatchAlls returns the catch-all definitions in declaration order.
func (s *Set) CatchAlls() []*Definition {
	return slices.Clone(s.catchAlls)
}
