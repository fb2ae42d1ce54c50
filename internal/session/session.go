// Package session exports a point-in-time snapshot of an Engine's
// Context — every proven or admitted theorem, and every declared
// relation and term symbol — so a proof session can be inspected,
// diffed, or handed to another session outside of the interactive
// front-end. This supplements the core spec: it is ambient tooling
// around the Context, not a new engine operation.
package session

import (
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/willowbrook/natded/internal/engine"
)

// Snapshot is a serializable view of a Context.
type Snapshot struct {
	Engine    string            `toml:"engine" yaml:"engine"`
	Theorems  map[string]string `toml:"theorems" yaml:"theorems"`
	Relations []string          `toml:"relations" yaml:"relations"`
	Terms     []string          `toml:"terms" yaml:"terms"`
	Proving   string            `toml:"proving,omitempty" yaml:"proving,omitempty"`

	// Author is informational only, carried over from configuration by
	// the caller; Of never sets it.
	Author string `toml:"author,omitempty" yaml:"author,omitempty"`
}

// Of builds a Snapshot from the engine's current state.
func Of(eng *engine.Engine) Snapshot {
	s := Snapshot{
		Engine:   eng.Name,
		Theorems: map[string]string{},
	}
	for name, f := range eng.Context.Theorems {
		s.Theorems[name] = f.String()
	}
	for name := range eng.Context.Relations {
		s.Relations = append(s.Relations, name)
	}
	for name := range eng.Context.Terms {
		s.Terms = append(s.Terms, name)
	}
	sort.Strings(s.Relations)
	sort.Strings(s.Terms)
	if eng.Active != nil {
		s.Proving = eng.Active.Name
	}
	return s
}

// WriteTOML serializes the snapshot as TOML.
func (s Snapshot) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// WriteYAML serializes the snapshot as YAML.
func (s Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(s)
}
