// Package groupkit groups the elements of a sequence by a key function.
//
// Two flavours exist, and they answer different questions:
//
//   - Consecutive only merges adjacent elements that share a key, so the same key can show up again later.
//     Sort the input by the key first when every key should appear once.
//   - By collects every element under its key regardless of position,
//     and keeps the keys in the order they were first seen.
package groupkit

import (
	"cmp"
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrNilKeyFunc errorkit.Error = "ErrNilKeyFunc"

// Group is a key with the elements that were grouped under it.
type Group[K comparable, T any] struct {
	Key    K
	Values []T
}

// Consecutive yields a group for every run of adjacent elements with an equal key.
func Consecutive[K comparable, T any](src iter.Seq[T], key func(T) K) (iter.Seq2[K, []T], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	return func(yield func(K, []T) bool) {
		var (
			current K
			values  []T
		)
		for v := range src {
			k := key(v)
			if 0 < len(values) && k != current {
				if !yield(current, values) {
					return
				}
				values = nil
			}
			current = k
			values = append(values, v)
		}
		if 0 < len(values) {
			yield(current, values)
		}
	}, nil
}

// By groups all elements by their key.
// Groups are ordered by the first occurrence of their key, and values keep their original order.
func By[K comparable, T any](src []T, key func(T) K) ([]Group[K, T], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	var (
		groups []Group[K, T]
		index  = make(map[K]int)
	)
	for _, v := range src {
		k := key(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Values = append(groups[i].Values, v)
	}
	return groups, nil
}

// SortedConsecutive stable sorts a copy of src by key, then groups it with Consecutive.
// The source slice is left untouched.
func SortedConsecutive[K cmp.Ordered, T any](src []T, key func(T) K) ([]Group[K, T], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	sorted := slices.Clone(src)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	groups, err := Consecutive(slices.Values(sorted), key)
	if err != nil {
		return nil, err
	}
	var out []Group[K, T]
	for k, vs := range groups {
		out = append(out, Group[K, T]{Key: k, Values: vs})
	}
	return out, nil
}
