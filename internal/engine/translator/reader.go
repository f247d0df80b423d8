// Package translator converts a captured build trace into a makefile-shaped
// dependency graph: one sequential pass over the trace, one rule per distinct
// output, one aggregate target at the end.
package translator

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"sync"

	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/xmk/internal/escape"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single trace line. Compiler invocations routinely
// exceed bufio's default 64K.
const maxLineSize = 4 * 1024 * 1024

var cdRe = regexp.MustCompile(`^\s*cd (.+)$`)

// Reader is a line-buffered reader over the trace with one-line lookahead.
type Reader struct {
	sc      *bufio.Scanner
	peeked  string
	hasPeek bool
}

// NewReader creates a Reader over the given trace stream.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc}
}

// Next returns the next logical line with its terminator trimmed.
// The second return value is false at end of input.
func (r *Reader) Next() (string, bool) {
	if r.hasPeek {
		r.hasPeek = false
		return r.peeked, true
	}
	if !r.sc.Scan() {
		return "", false
	}
	return strings.TrimSuffix(r.sc.Text(), "\r"), true
}

// Peek returns the next logical line without consuming it.
func (r *Reader) Peek() (string, bool) {
	if !r.hasPeek {
		if !r.sc.Scan() {
			return "", false
		}
		r.peeked = strings.TrimSuffix(r.sc.Text(), "\r")
		r.hasPeek = true
	}
	return r.peeked, true
}

// NextDirectoryContext consumes the next line, which must be the
// "cd <path>" line that follows every build-step header. The extracted path
// is re-escaped for shell-safe embedding and returned as the two-line
// command prefix of the emitted rule: change directory, then invoke the
// step's timing wrapper.
//
// A missing or malformed directory line is fatal for the pass: without it
// there is no safe working directory for the rule.
func (r *Reader) NextDirectoryContext() (string, error) {
	line, ok := r.Next()
	if !ok {
		return "", domain.ErrMissingDirectoryContext
	}
	m := cdRe.FindStringSubmatch(line)
	if m == nil {
		return "", zerr.With(domain.ErrMissingDirectoryContext, "line", line)
	}
	dir := escape.Dollar(escape.Escape(" ", escape.Unescape(`'^$()&`, m[1])))
	return "\tcd " + dir + "\n\ttime ", nil
}

var (
	optionMu  sync.Mutex
	optionRes = map[string]*regexp.Regexp{}
)

// optionRe returns the cached pattern matching "<option> <value>" where the
// value token may contain backslash-escaped whitespace.
func optionRe(option string) *regexp.Regexp {
	optionMu.Lock()
	defer optionMu.Unlock()
	re, ok := optionRes[option]
	if !ok {
		re = regexp.MustCompile(`(?:^|\s)` + regexp.QuoteMeta(option) + `\s+((?:\\.|[^\s\\])+)`)
		optionRes[option] = re
	}
	return re
}

// ExtractOption returns every value following each occurrence of
// "<option> <value>" on the line. An embedded escaped space does not
// terminate the value token.
func ExtractOption(line, option string) []string {
	var values []string
	for _, m := range optionRe(option).FindAllStringSubmatch(line, -1) {
		values = append(values, m[1])
	}
	return values
}
