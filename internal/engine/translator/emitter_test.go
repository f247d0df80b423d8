package translator_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/xmk/internal/engine/translator"
)

var emitterClock = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestWriteMakefile_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, translator.WriteMakefile(&buf, domain.NewBuildGraph(), "xcodebuild build", emitterClock))

	want := "# Generated by xmk on Fri, 01 Mar 2024 12:00:00 +0000\n" +
		"# invocation: xcodebuild build\n" +
		"\n" +
		"all: main\n" +
		"\n" +
		"main:\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMakefile_TargetWithoutPrereqs(t *testing.T) {
	g := domain.NewBuildGraph()
	g.Define(&domain.BuildTarget{
		Output:  "/tmp/bin/app",
		Prefix:  "\tcd /tmp/proj\n\ttime ",
		Command: "clang -o app",
	})
	g.AddLinked("/tmp/bin/app")

	var buf bytes.Buffer
	require.NoError(t, translator.WriteMakefile(&buf, g, "inv", emitterClock))

	// No trailing space after the colon when there are no prerequisites.
	assert.Contains(t, buf.String(), "/tmp/bin/app:\n\tcd /tmp/proj\n\ttime clang -o app\n\ttouch /tmp/bin/app\n")
	assert.Contains(t, buf.String(), "main: /tmp/bin/app\n")
}

func TestWriteMakefile_CommentsKeepTheirPlace(t *testing.T) {
	g := domain.NewBuildGraph()
	g.Comment("before")
	g.Define(&domain.BuildTarget{
		Output:  "a.o",
		Prereqs: []string{"a.c"},
		Prefix:  "\tcd /x\n\ttime ",
		Command: "cc -c a.c",
	})
	g.Comment("after")

	var buf bytes.Buffer
	require.NoError(t, translator.WriteMakefile(&buf, g, "inv", emitterClock))

	out := buf.String()
	assert.Contains(t, out, "# before\na.o: a.c\n")
	assert.Contains(t, out, "\ttouch a.o\n\n# after\n")
}

func TestWriteMakefile_SigningRunsAfterLinking(t *testing.T) {
	g := domain.NewBuildGraph()
	g.AddLinked("/tmp/bin/app")
	g.AddLinked("/tmp/bin/helper")
	g.AddSigning("/usr/bin/codesign --force --sign - /tmp/bin/app")
	g.AddSigning("/usr/bin/touch -c /tmp/bin/app")

	var buf bytes.Buffer
	require.NoError(t, translator.WriteMakefile(&buf, g, "inv", emitterClock))

	assert.Contains(t, buf.String(),
		"main: /tmp/bin/app /tmp/bin/helper\n"+
			"\t/usr/bin/codesign --force --sign - /tmp/bin/app\n"+
			"\t/usr/bin/touch -c /tmp/bin/app\n")
}
