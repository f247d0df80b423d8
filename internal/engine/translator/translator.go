package translator

import (
	"io"
	"strings"

	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/xmk/internal/core/ports"
	"go.trai.ch/xmk/internal/escape"
)

// Translator runs the single-pass translation from trace text to BuildGraph.
// Recoverable record-level problems are reported through the logger and
// never stop the pass; a missing directory-context line aborts it.
type Translator struct {
	log ports.Logger
}

// New creates a new Translator.
func New(log ports.Logger) *Translator {
	return &Translator{log: log}
}

// Translate scans the trace line by line and accumulates the dependency
// graph. The returned graph is complete, or the error is fatal and no graph
// is returned.
func (t *Translator) Translate(in io.Reader) (*domain.BuildGraph, error) {
	rd := NewReader(in)
	g := domain.NewBuildGraph()

	for {
		line, ok := rd.Next()
		if !ok {
			break
		}

		switch classify(line) {
		case kindCompile:
			rec, err := t.extractCompile(rd, line)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				apply(g, rec)
			}
		case kindSwift:
			rec, err := t.extractSwift(rd, line)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				apply(g, rec)
			}
		case kindLink:
			rec, err := t.extractLink(rd, line)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				apply(g, rec)
			}
		case kindSigning:
			apply(g, &domain.SigningRecord{Command: escape.Dollar(strings.TrimSpace(line))})
		case kindOther:
			g.Comment(line)
		}
	}

	return g, nil
}

// apply folds one extracted record into the graph. Definition is always
// first-writer-wins: a record for an already-defined output is dropped.
func apply(g *domain.BuildGraph, rec domain.Record) {
	switch r := rec.(type) {
	case *domain.CompileRecord:
		g.Define(&domain.BuildTarget{
			Output:  r.Object,
			Prereqs: []string{r.Source},
			Prefix:  r.Prefix,
			Command: r.Command,
		})

	case *domain.SwiftBatchRecord:
		// One rule per pair, all sharing the batch command. Members whose
		// object is already defined are skipped individually.
		for _, p := range r.Pairs {
			if g.Defined(p.Object) {
				continue
			}
			g.Define(&domain.BuildTarget{
				Output:  p.Object,
				Prereqs: []string{p.Source},
				Prefix:  r.Prefix,
				Command: r.Command,
			})
		}

	case *domain.LinkRecord:
		// Keep only file-list entries that are defined outputs and not the
		// executable itself, guarding against stale or foreign entries.
		prereqs := make([]string, 0, len(r.Objects))
		for _, obj := range r.Objects {
			if obj == r.Executable || !g.Defined(obj) {
				continue
			}
			prereqs = append(prereqs, obj)
		}
		if g.Define(&domain.BuildTarget{
			Output:  r.Executable,
			Prereqs: prereqs,
			Prefix:  r.Prefix,
			Command: r.Command,
		}) && !strings.HasSuffix(r.Executable, ".o") {
			// Pseudo-link steps that relink .o aggregates stay out of the
			// final aggregate target.
			g.AddLinked(r.Executable)
		}

	case *domain.SigningRecord:
		g.AddSigning(r.Command)
	}
}
