package modfile

import "go.starlark.net/syntax"

// Dependency is one bazel_dep declaration.
type Dependency struct {
	Name    string          `json:"name" yaml:"name"`
	Version string          `json:"version" yaml:"version"`
	Pos     syntax.Position `json:"-" yaml:"-"`
}

// Collector accumulates dependencies in declaration order. It only grows.
type Collector struct {
	deps []Dependency
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends d.
func (c *Collector) Add(d Dependency) {
	c.deps = append(c.deps, d)
}

// Len returns the number of recorded dependencies.
func (c *Collector) Len() int {
	return len(c.deps)
}

// Dependencies returns a copy of the recorded dependencies in declaration order.
func (c *Collector) Dependencies() []Dependency {
	return append([]Dependency(nil), c.deps...)
}

// Duplicates returns the names declared more than once, in order of first
// repetition.
func (c *Collector) Duplicates() []string {
	seen := make(map[string]int, len(c.deps))
	var dups []string
	for _, d := range c.deps {
		seen[d.Name]++
		if seen[d.Name] == 2 {
			dups = append(dups, d.Name)
		}
	}
	return dups
}
