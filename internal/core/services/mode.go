package services

import "cmp"

// counter tallies occurrences of comparable values.
type counter[K comparable] map[K]int

func (c counter[K]) add(k K) {
	c[k]++
}

// modeOf returns the most frequent key and its count.
// Among tied keys the one that sorts first under less wins, so the result
// does not depend on map iteration order.
func modeOf[K comparable](c counter[K], less func(a, b K) bool) (K, int) {
	var best K
	bestCount := 0
	for k, n := range c {
		if n > bestCount || (n == bestCount && less(k, best)) {
			best, bestCount = k, n
		}
	}
	return best, bestCount
}

// modeOrdered is modeOf for naturally ordered keys.
func modeOrdered[K cmp.Ordered](c counter[K]) (K, int) {
	return modeOf(c, cmp.Less[K])
}
