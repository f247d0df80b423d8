package translator

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/xmk/internal/escape"
)

const (
	compilePrefix = "CompileC "
	swiftPrefix   = "SwiftCompile "
	linkPrefix    = "Ld "
)

var (
	// Paths in step headers are space separated but may contain
	// backslash-escaped spaces, so a token is "escaped pair or non-space".
	compileRe = regexp.MustCompile(`^CompileC ((?:\\.|\S)+) ((?:\\.|\S)+)`)
	linkRe    = regexp.MustCompile(`^Ld ((?:\\.|\S)+)`)
	signRe    = regexp.MustCompile(`^\s+/usr/bin/(codesign|touch)\b`)
)

type kind int

const (
	kindOther kind = iota
	kindCompile
	kindSwift
	kindLink
	kindSigning
)

// classify determines which record shape a logical line starts.
func classify(line string) kind {
	switch {
	case strings.HasPrefix(line, compilePrefix):
		return kindCompile
	case strings.HasPrefix(line, swiftPrefix):
		return kindSwift
	case strings.HasPrefix(line, linkPrefix):
		return kindLink
	case signRe.MatchString(line):
		return kindSigning
	default:
		return kindOther
	}
}

// skipToInvocation advances past blank lines and response-file marker lines
// to the actual invocation line of the current step. It peeks before
// consuming, so a record missing its invocation stops at the next step
// header instead of swallowing it.
func skipToInvocation(rd *Reader) (string, bool) {
	for {
		line, ok := rd.Peek()
		if !ok {
			return "", false
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(trimmed, "response file") {
			rd.Next()
			continue
		}
		if classify(line) != kindOther {
			return "", false
		}
		rd.Next()
		return line, true
	}
}

// extractCompile recovers a CompileRecord from a "CompileC <object> <source>"
// step header and its companion lines.
func (t *Translator) extractCompile(rd *Reader, line string) (*domain.CompileRecord, error) {
	m := compileRe.FindStringSubmatch(line)
	if m == nil {
		t.log.Warn("malformed CompileC header, skipping: " + line)
		return nil, nil
	}
	prefix, err := rd.NextDirectoryContext()
	if err != nil {
		return nil, err
	}
	inv, ok := skipToInvocation(rd)
	if !ok {
		t.log.Warn("missing compile invocation for " + m[1] + ", skipping")
		return nil, nil
	}
	return &domain.CompileRecord{
		Object:  escape.Escape("$&", escape.Unescape("{}()", m[1])),
		Source:  escape.Unescape("'", escape.Dollar(m[2])),
		Prefix:  prefix,
		Command: escape.Dollar(inv),
	}, nil
}

// stripTaskWrapper drops the no-op task-execution wrapper in front of the
// actual swift invocation, plus the output-framing flag it adds.
func stripTaskWrapper(inv string) string {
	trimmed := strings.TrimLeft(inv, " \t")
	indent := inv[:len(inv)-len(trimmed)]
	if rest, ok := strings.CutPrefix(trimmed, "builtin-swiftTaskExecution -- "); ok {
		trimmed = rest
	}
	trimmed = strings.ReplaceAll(trimmed, " -parseable-output", "")
	return indent + trimmed
}

// extractSwift recovers a SwiftBatchRecord from an aggregate swift
// invocation: one shared command, one (object, source) pair per
// -o / -primary-file occurrence.
func (t *Translator) extractSwift(rd *Reader, line string) (*domain.SwiftBatchRecord, error) {
	prefix, err := rd.NextDirectoryContext()
	if err != nil {
		return nil, err
	}
	inv, ok := skipToInvocation(rd)
	if !ok {
		t.log.Warn("missing swift invocation, skipping: " + line)
		return nil, nil
	}
	inv = stripTaskWrapper(inv)

	sources := ExtractOption(inv, "-primary-file")
	outputs := ExtractOption(inv, "-o")
	if len(sources) == 0 {
		t.log.Warn("no -primary-file in swift invocation, whole-module optimization is not supported, skipping: " + line)
		return nil, nil
	}

	n := min(len(sources), len(outputs))
	if len(sources) != len(outputs) {
		t.log.Warn(fmt.Sprintf("mismatched -primary-file and -o counts (%d and %d), pairing the first %d", len(sources), len(outputs), n))
	}
	pairs := make([]domain.SwiftPair, 0, n)
	for i := range n {
		pairs = append(pairs, domain.SwiftPair{
			Object: escape.Unescape("{}()", outputs[i]),
			Source: strings.ReplaceAll(escape.Unescape(`$'&{}*`, sources[i]), "$", "$$"),
		})
	}
	return &domain.SwiftBatchRecord{
		Pairs:   pairs,
		Prefix:  prefix,
		Command: escape.Dollar(inv),
	}, nil
}

// extractLink recovers a LinkRecord from an "Ld <executable>" step header.
// The object prerequisites come from the -filelist artifact, read line by
// line; an unreadable file list degrades to a rule without prerequisites.
func (t *Translator) extractLink(rd *Reader, line string) (*domain.LinkRecord, error) {
	m := linkRe.FindStringSubmatch(line)
	if m == nil {
		t.log.Warn("malformed Ld header, skipping: " + line)
		return nil, nil
	}
	prefix, err := rd.NextDirectoryContext()
	if err != nil {
		return nil, err
	}
	inv, ok := skipToInvocation(rd)
	if !ok {
		t.log.Warn("missing link invocation for " + m[1] + ", skipping")
		return nil, nil
	}
	filelists := ExtractOption(inv, "-filelist")
	if len(filelists) == 0 {
		t.log.Warn("no -filelist in link invocation, skipping: " + m[1])
		return nil, nil
	}
	return &domain.LinkRecord{
		Executable: escape.Escape("&$", m[1]),
		Objects:    t.readFileList(escape.UnescapeAll(filelists[0])),
		Prefix:     prefix,
		Command:    escape.Dollar(inv),
	}, nil
}

// readFileList reads the auxiliary file-list artifact as an ordered sequence
// of object paths, one per line.
func (t *Translator) readFileList(path string) []string {
	f, err := os.Open(path) //nolint:gosec // path comes from the captured trace
	if err != nil {
		t.log.Warn(fmt.Sprintf("cannot open file list %s, emitting rule without prerequisites", path))
		return nil
	}
	defer f.Close() //nolint:errcheck // read-only file

	var objects []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		entry := strings.TrimSpace(strings.TrimSuffix(sc.Text(), "\r"))
		if entry != "" {
			objects = append(objects, entry)
		}
	}
	return objects
}
