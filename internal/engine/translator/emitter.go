package translator

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/zerr"
)

// WriteMakefile serializes the graph into the rule file: a header naming the
// generation time and the exact capture invocation, a default target, one
// rule block per target in insertion order with passthrough comments
// interleaved, and the aggregate main target followed by the signing
// commands.
//
// Each rule touches its own output after the command so the output timestamp
// always advances even when the underlying tool leaves the file untouched.
func WriteMakefile(w io.Writer, g *domain.BuildGraph, invocation string, now time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Generated by xmk on %s\n", now.Format(time.RFC1123Z))
	fmt.Fprintf(bw, "# invocation: %s\n", invocation)
	fmt.Fprintf(bw, "\nall: main\n\n")

	for e := range g.Entries() {
		if e.Target == nil {
			fmt.Fprintf(bw, "# %s\n", e.Comment)
			continue
		}
		t := e.Target
		if len(t.Prereqs) == 0 {
			fmt.Fprintf(bw, "%s:\n", t.Output)
		} else {
			fmt.Fprintf(bw, "%s: %s\n", t.Output, strings.Join(t.Prereqs, " "))
		}
		fmt.Fprintf(bw, "%s%s\n", t.Prefix, t.Command)
		fmt.Fprintf(bw, "\ttouch %s\n\n", t.Output)
	}

	if linked := g.Linked(); len(linked) == 0 {
		fmt.Fprintf(bw, "main:\n")
	} else {
		fmt.Fprintf(bw, "main: %s\n", strings.Join(linked, " "))
	}
	for _, cmd := range g.Signing() {
		fmt.Fprintf(bw, "\t%s\n", cmd)
	}

	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrMakefileWriteFailed.Error())
	}
	return nil
}
