package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xmk/internal/core/domain"
)

func TestBuildGraph_DefineFirstWriterWins(t *testing.T) {
	g := domain.NewBuildGraph()

	first := &domain.BuildTarget{Output: "a.o", Prereqs: []string{"a.c"}}
	second := &domain.BuildTarget{Output: "a.o", Prereqs: []string{"other.c"}}

	assert.True(t, g.Define(first))
	assert.False(t, g.Define(second))
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Defined("a.o"))
	assert.False(t, g.Defined("b.o"))

	var ts []*domain.BuildTarget
	for e := range g.Entries() {
		if e.Target != nil {
			ts = append(ts, e.Target)
		}
	}
	require.Len(t, ts, 1)
	assert.Same(t, first, ts[0])
}

func TestBuildGraph_EntriesPreserveInsertionOrder(t *testing.T) {
	g := domain.NewBuildGraph()
	g.Comment("header")
	g.Define(&domain.BuildTarget{Output: "a.o"})
	g.Comment("between")
	g.Define(&domain.BuildTarget{Output: "b.o"})

	var got []string
	for e := range g.Entries() {
		if e.Target != nil {
			got = append(got, e.Target.Output)
		} else {
			got = append(got, "# "+e.Comment)
		}
	}
	assert.Equal(t, []string{"# header", "a.o", "# between", "b.o"}, got)
}

func TestBuildGraph_LinkedAndSigningKeepOrder(t *testing.T) {
	g := domain.NewBuildGraph()
	g.AddLinked("app")
	g.AddLinked("helper")
	g.AddSigning("codesign app")
	g.AddSigning("touch -c app")

	assert.Equal(t, []string{"app", "helper"}, g.Linked())
	assert.Equal(t, []string{"codesign app", "touch -c app"}, g.Signing())
}

func TestBuildGraph_EntriesStopsWhenYieldReturnsFalse(t *testing.T) {
	g := domain.NewBuildGraph()
	g.Define(&domain.BuildTarget{Output: "a.o"})
	g.Define(&domain.BuildTarget{Output: "b.o"})

	var seen int
	for range g.Entries() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}
