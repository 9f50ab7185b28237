package main

import (
	"sort"

	"github.com/arbooker/factor63/factor63"
)

// sortFactors reorders factors by ascending prime for display. Package
// factor63 itself returns factors in discovery order and leaves sorting
// to callers that want it.
func sortFactors(factors []factor63.Factor) {
	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Prime < factors[j].Prime
	})
}
