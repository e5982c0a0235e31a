// Package report renders resolved directory sets for the appdirs CLI.
package report

import (
	"github.com/smykla-skalski/appdirs/pkg/appdir"
)

// Source is the directory surface shared by both strategy tiers.
type Source interface {
	ConfigDir() string
	DataDir() string
	CacheDir() string
	StateDir() (string, bool)
	RuntimeDir() (string, bool)
}

// Dirs is a resolved directory set for one layout convention.
// State and Runtime stay empty where the convention has no such concept.
type Dirs struct {
	Kind    string `json:"kind"              yaml:"kind"`
	Config  string `json:"config"            yaml:"config"`
	Data    string `json:"data"              yaml:"data"`
	Cache   string `json:"cache"             yaml:"cache"`
	State   string `json:"state,omitempty"   yaml:"state,omitempty"`
	Runtime string `json:"runtime,omitempty" yaml:"runtime,omitempty"`
}

// New builds a Dirs from a strategy's directory surface.
func New(kind appdir.Kind, src Source) Dirs {
	dirs := Dirs{
		Kind:   kind.String(),
		Config: src.ConfigDir(),
		Data:   src.DataDir(),
		Cache:  src.CacheDir(),
	}

	if state, ok := src.StateDir(); ok {
		dirs.State = state
	}

	if runtime, ok := src.RuntimeDir(); ok {
		dirs.Runtime = runtime
	}

	return dirs
}

// entry is a single purpose/path pair for rendering.
type entry struct {
	purpose string
	path    string
	present bool
}

// entries returns the directory set in display order.
func (d Dirs) entries() []entry {
	return []entry{
		{purpose: "config", path: d.Config, present: true},
		{purpose: "data", path: d.Data, present: true},
		{purpose: "cache", path: d.Cache, present: true},
		{purpose: "state", path: d.State, present: d.State != ""},
		{purpose: "runtime", path: d.Runtime, present: d.Runtime != ""},
	}
}
