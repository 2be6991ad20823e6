// Package gallery provides the built-in example diagrams.
//
// Each entry pairs a stable name with a spec constructor. The specs double
// as living documentation of the spec format: they exercise every element
// type and most style overrides.
//
// Usage:
//
//	import "github.com/archplot/archplot/pkg/gallery"
//
//	for _, e := range gallery.All {
//	    fmt.Println(e.Name, "-", e.Title)
//	}
//
//	spec := gallery.Find("current-architecture").Spec()
package gallery

import "github.com/archplot/archplot/pkg/specfile"

// Entry is one built-in diagram.
type Entry struct {
	// Name is the stable identifier used on the command line.
	Name string

	// Title is the human-readable diagram title.
	Title string

	// Description summarizes what the diagram shows.
	Description string

	// Spec constructs a fresh spec. Callers own the returned value and
	// may mutate it freely.
	Spec func() specfile.Spec
}

// All is the canonical list of built-in diagrams.
var All = []*Entry{
	currentArchitecture,
	proposedArchitecture,
}

// Find returns the entry with the given name, or nil if not found.
func Find(name string) *Entry {
	for _, e := range All {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Names returns the names of all built-in diagrams, in listing order.
func Names() []string {
	names := make([]string, len(All))
	for i, e := range All {
		names[i] = e.Name
	}
	return names
}
