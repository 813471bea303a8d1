// Package girder resolves configured girder element lists against the
// analysis model: topology chaining, coordinate paths and force sampling.
package girder

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// Girder is one longitudinal load path: a named, physically ordered list of
// element identifiers whose consecutive members share exactly one node.
type Girder struct {
	Name     string            `toml:"name"`
	Elements []model.ElementID `toml:"elements"`
}

// Set is the fixed collection of girder definitions for a bridge, plus the
// name of the central girder used for the 2D diagrams. Definitions are
// explicit configuration data handed to the resolver and assembler; nothing
// in this package keeps process-wide girder state.
type Set struct {
	Central string   `toml:"central"`
	Girders []Girder `toml:"girder"`
}

// Girder returns the named girder definition.
func (s *Set) Girder(name string) (Girder, bool) {
	for _, g := range s.Girders {
		if g.Name == name {
			return g, true
		}
	}
	return Girder{}, false
}

// CentralGirder returns the girder designated for the 2D diagrams.
func (s *Set) CentralGirder() (Girder, error) {
	g, ok := s.Girder(s.Central)
	if !ok {
		return Girder{}, fmt.Errorf("central girder %q is not defined", s.Central)
	}
	return g, nil
}

// Validate checks that the set is usable: at least one girder, unique
// non-empty names, non-empty element lists and a resolvable central girder.
func (s *Set) Validate() error {
	if len(s.Girders) == 0 {
		return fmt.Errorf("girder set defines no girders")
	}
	seen := make(map[string]bool, len(s.Girders))
	for _, g := range s.Girders {
		if g.Name == "" {
			return fmt.Errorf("girder with empty name")
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate girder name %q", g.Name)
		}
		seen[g.Name] = true
		if len(g.Elements) == 0 {
			return fmt.Errorf("girder %q has an empty element list", g.Name)
		}
	}
	if _, err := s.CentralGirder(); err != nil {
		return err
	}
	return nil
}

// LoadSet loads girder definitions from a TOML file.
//
//	central = "Girder 3"
//
//	[[girder]]
//	name = "Girder 1"
//	elements = [13, 22, 31, 40, 49, 58, 67, 76, 81]
func LoadSet(path string) (*Set, error) {
	var s Set
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("loading girder set %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultSet returns the girder definitions of the reference bridge: five
// longitudinal girders of nine elements each, with Girder 3 as the central
// girder. Used when no girder configuration file is given.
func DefaultSet() *Set {
	return &Set{
		Central: "Girder 3",
		Girders: []Girder{
			{Name: "Girder 1", Elements: []model.ElementID{13, 22, 31, 40, 49, 58, 67, 76, 81}},
			{Name: "Girder 2", Elements: []model.ElementID{14, 23, 32, 41, 50, 59, 68, 77, 82}},
			{Name: "Girder 3", Elements: []model.ElementID{15, 24, 33, 42, 51, 60, 69, 78, 83}},
			{Name: "Girder 4", Elements: []model.ElementID{16, 25, 34, 43, 52, 61, 70, 79, 84}},
			{Name: "Girder 5", Elements: []model.ElementID{17, 26, 35, 44, 53, 62, 71, 80, 85}},
		},
	}
}

// ElementNames maps every element of the set to its girder name. Elements
// outside the map belong to transverse members.
func (s *Set) ElementNames() map[model.ElementID]string {
	names := make(map[model.ElementID]string)
	for _, g := range s.Girders {
		for _, eid := range g.Elements {
			names[eid] = g.Name
		}
	}
	return names
}
