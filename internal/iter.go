// Package internal holds helpers shared by the ls8 packages.
package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Concat chains key/value sequences. Later sequences override earlier
// keys when collected into a map.
func Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Sorted collects a key/value sequence, and yields it in key order.
func Sorted[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	collected := maps.Collect(seq)
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(collected)) {
			if !yield(key, collected[key]) {
				return
			}
		}
	}
}
