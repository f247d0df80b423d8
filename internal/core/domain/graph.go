// Package domain contains the core domain models for the trace-to-makefile
// translation.
package domain

import "iter"

// BuildTarget is one emitted rule: an output, its prerequisites, the
// directory-context command prefix and the recovered shell command.
type BuildTarget struct {
	Output  string
	Prereqs []string
	Prefix  string
	Command string
}

// Entry is one element of the emitted rule stream, in original trace order.
// Exactly one of Target and Comment is set.
type Entry struct {
	Target  *BuildTarget
	Comment string
}

// BuildGraph accumulates build targets, passthrough comments, the ordered
// list of linked executables and the ordered list of signing commands.
// It is mutated during the translation pass and read-only afterwards.
type BuildGraph struct {
	entries []Entry
	defined map[string]*BuildTarget
	linked  []string
	signing []string
}

// NewBuildGraph creates a new empty BuildGraph.
func NewBuildGraph() *BuildGraph {
	return &BuildGraph{
		defined: make(map[string]*BuildTarget),
	}
}

// Define inserts a target, preserving first-seen order. A target for an
// already-defined output is silently dropped: the same output may be
// mentioned several times across the trace and only the first definition
// produces a rule. It reports whether the target was inserted.
func (g *BuildGraph) Define(t *BuildTarget) bool {
	if _, exists := g.defined[t.Output]; exists {
		return false
	}
	g.defined[t.Output] = t
	g.entries = append(g.entries, Entry{Target: t})
	return true
}

// Defined reports whether a rule already exists for the given output.
func (g *BuildGraph) Defined(output string) bool {
	_, exists := g.defined[output]
	return exists
}

// Comment appends a passthrough line from the trace.
func (g *BuildGraph) Comment(line string) {
	g.entries = append(g.entries, Entry{Comment: line})
}

// AddLinked appends an executable to the ordered linked-executables list.
// Pseudo-link steps that merely relink object aggregates are never added here.
func (g *BuildGraph) AddLinked(executable string) {
	g.linked = append(g.linked, executable)
}

// AddSigning appends a signing or touch command in captured order.
func (g *BuildGraph) AddSigning(command string) {
	g.signing = append(g.signing, command)
}

// Entries returns an iterator over the rule stream in insertion order.
func (g *BuildGraph) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range g.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Linked returns the ordered linked executables.
func (g *BuildGraph) Linked() []string {
	return g.linked
}

// Signing returns the ordered signing commands.
func (g *BuildGraph) Signing() []string {
	return g.signing
}

// Len returns the number of defined targets.
func (g *BuildGraph) Len() int {
	return len(g.defined)
}
