// Package dex resolves species and move names to their static battle data.
package dex

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func errorf(format string, args ...any) error {
	return fmt.Errorf("dex: "+format, args...)
}

var (
	folder = cases.Fold()
	titler = cases.Title(language.English)
)

// ID normalises a display name into a lookup key: case-folded with everything
// except letters and digits removed, so "Flare Blitz" and "flare-blitz" agree.
func ID(name string) string {
	folded := folder.String(name)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DisplayName title-cases a user supplied name, replacing hyphens with spaces.
func DisplayName(name string) string {
	return titler.String(strings.ReplaceAll(strings.TrimSpace(name), "-", " "))
}

// Registry holds species and move data keyed by ID.
type Registry struct {
	species map[string]Species
	moves   map[string]Move
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{species: make(map[string]Species), moves: make(map[string]Move)}
}

// RegisterSpecies adds s, overwriting any existing entry with the same ID.
func (r *Registry) RegisterSpecies(s Species) {
	r.species[ID(s.Name)] = s
}

// RegisterMove adds m, overwriting any existing entry with the same ID.
func (r *Registry) RegisterMove(m Move) {
	if m.Target == "" {
		m.Target = TargetSelected
	}
	r.moves[ID(m.Name)] = m
}

// LookupSpecies returns the species for name, or (zero, false).
func (r *Registry) LookupSpecies(name string) (Species, bool) {
	s, ok := r.species[ID(name)]
	return s, ok
}

// LookupMove returns a private copy of the move for name, or (zero, false).
func (r *Registry) LookupMove(name string) (Move, bool) {
	m, ok := r.moves[ID(name)]
	if !ok {
		return Move{}, false
	}
	return m.Clone(), true
}

// Species resolves name, substituting PlaceholderSpecies for unknown names.
func (r *Registry) Species(name string) Species {
	if s, ok := r.LookupSpecies(name); ok {
		return s
	}
	return PlaceholderSpecies(name)
}

// Move resolves name, substituting PlaceholderMove for unknown names.
func (r *Registry) Move(name string) Move {
	if m, ok := r.LookupMove(name); ok {
		return m
	}
	return PlaceholderMove(name)
}

// MoveNames returns the names of all registered moves in sorted order.
func (r *Registry) MoveNames() []string {
	out := make([]string, 0, len(r.moves))
	for _, m := range r.moves {
		out = append(out, m.Name)
	}
	sort.Strings(out)
	return out
}

// LoadSpeciesFromBytes parses one or more YAML documents of species data.
//
// Postcondition: every returned species passes Validate.
func LoadSpeciesFromBytes(data []byte) ([]Species, error) {
	return decodeAll(data, (*Species).Validate)
}

// LoadMovesFromBytes parses one or more YAML documents of move data.
//
// Postcondition: every returned move passes Validate.
func LoadMovesFromBytes(data []byte) ([]Move, error) {
	return decodeAll(data, (*Move).Validate)
}

func decodeAll[T any](data []byte, validate func(*T) error) ([]T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var out []T
	for {
		var v T
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
		if err := validate(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// LoadDirectories reads every *.yaml file in speciesDir and movesDir into a
// new Registry.
//
// Precondition: both directories must be readable.
// Postcondition: Returns a non-nil Registry, or an error naming the first file
// that failed to read, parse, or validate.
func LoadDirectories(speciesDir, movesDir string) (*Registry, error) {
	reg := NewRegistry()
	err := walkYAML(speciesDir, func(path string, data []byte) error {
		list, err := LoadSpeciesFromBytes(data)
		if err != nil {
			return err
		}
		for _, s := range list {
			reg.RegisterSpecies(s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = walkYAML(movesDir, func(path string, data []byte) error {
		list, err := LoadMovesFromBytes(data)
		if err != nil {
			return err
		}
		for _, m := range list {
			reg.RegisterMove(m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func walkYAML(dir string, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading dex dir %q: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !(strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		if err := fn(path, data); err != nil {
			return fmt.Errorf("loading %q: %w", path, err)
		}
	}
	return nil
}
