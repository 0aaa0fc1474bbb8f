package search

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func utilities(nodes []node) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.utility
	}
	return out
}

func TestOrderChildren(t *testing.T) {
	nodes := []node{{utility: 3}, {utility: -1}, {utility: 7}, {utility: 3}, {utility: 0}}
	orderChildren(nodes)
	assert.Equal(t, []float64{-1, 0, 3, 3, 7}, utilities(nodes))

	orderChildren(nil)
	single := []node{{utility: 1}}
	orderChildren(single)
	assert.Equal(t, []float64{1}, utilities(single))
}

func TestOrderChildrenSortsAscending(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.Float64Range(-50, 50)).Draw(t, "values")
		nodes := make([]node, len(values))
		for i, v := range values {
			nodes[i].utility = v
		}

		orderChildren(nodes)

		got := utilities(nodes)
		want := slices.Clone(values)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("orderChildren(%v) = %v, want %v", values, got, want)
		}
	})
}
