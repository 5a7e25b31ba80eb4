// SPDX-License-Identifier: MPL-2.0

package dag

import (
	"slices"
	"testing"
)

func graphOf(edges map[string][]string) *Graph {
	g := New()
	for from, deps := range edges {
		g.AddNode(from)
		for _, to := range deps {
			g.AddEdge(from, to)
		}
	}
	return g
}

func TestClosure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edges map[string][]string
		seeds []string
		want  []string
	}{
		{
			name:  "empty graph keeps seeds",
			edges: nil,
			seeds: []string{"A"},
			want:  []string{"A"},
		},
		{
			name:  "no seeds",
			edges: map[string][]string{"A": {"B"}},
			seeds: nil,
			want:  []string{},
		},
		{
			name:  "linear chain",
			edges: map[string][]string{"A": {"B"}, "B": {"C"}},
			seeds: []string{"A"},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "two node cycle",
			edges: map[string][]string{"A": {"B"}, "B": {"A"}},
			seeds: []string{"A"},
			want:  []string{"A", "B"},
		},
		{
			name:  "self loop",
			edges: map[string][]string{"A": {"A", "B"}},
			seeds: []string{"A"},
			want:  []string{"A", "B"},
		},
		{
			name:  "unknown dependency is a leaf",
			edges: map[string][]string{"A": {"ghost"}},
			seeds: []string{"A"},
			want:  []string{"A", "ghost"},
		},
		{
			name:  "unreachable nodes excluded",
			edges: map[string][]string{"A": {"B"}, "X": {"Y"}},
			seeds: []string{"A"},
			want:  []string{"A", "B"},
		},
		{
			name: "diamond with duplicate seeds",
			edges: map[string][]string{
				"scheme-small": {"collection-basic", "collection-latex"},
				"collection-basic": {"kpathsea"},
				"collection-latex": {"kpathsea", "latex"},
			},
			seeds: []string{"scheme-small", "scheme-small"},
			want:  []string{"collection-basic", "collection-latex", "kpathsea", "latex", "scheme-small"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := graphOf(tt.edges).Closure(tt.seeds...)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Closure(%v) = %v, want %v", tt.seeds, got, tt.want)
			}
		})
	}
}

func TestClosure_ClosedUnderOneStep(t *testing.T) {
	t.Parallel()

	g := graphOf(map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"a", "e"},
		"d": {"b"},
		"e": nil,
		"f": {"a"},
	})

	got := g.Closure("a")
	for _, name := range got {
		for _, dep := range g.Neighbors(name) {
			if !slices.Contains(got, dep) {
				t.Errorf("closure %v missing %q (dependency of %q)", got, dep, name)
			}
		}
	}
	if slices.Contains(got, "f") {
		t.Errorf("closure %v should not contain f", got)
	}
}

func TestGraph_AddEdgeDoesNotAddTarget(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddEdge("A", "B")
	if !g.Has("A") {
		t.Error("expected A to be a node")
	}
	if g.Has("B") {
		t.Error("B was never declared and should not be a node")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestGraph_NeighborsIsCopy(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddEdge("A", "B")
	n := g.Neighbors("A")
	n[0] = "Z"
	if g.Neighbors("A")[0] != "B" {
		t.Error("Neighbors() must return a copy")
	}
	if g.Neighbors("unknown") != nil {
		t.Error("unknown node should have no neighbors")
	}
}
