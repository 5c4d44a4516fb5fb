// Package aggregate holds the small generic combinators every analysis is built from:
// filter, group in first-seen order, stable sort, truncate, round.
package aggregate

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

type Group[K comparable] struct {
	Key   K
	Value float64
	Count int
}

// Filter returns the items for which keep is true, in input order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// GroupSum sums metric per key. Groups come back in first-encountered order;
// items whose key reports false are skipped.
func GroupSum[T any, K comparable](items []T, key func(T) (K, bool), metric func(T) float64) []Group[K] {
	index := make(map[K]int)
	groups := make([]Group[K], 0)

	for _, it := range items {
		k, ok := key(it)
		if !ok {
			continue
		}
		i, exists := index[k]
		if !exists {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K]{Key: k})
		}
		groups[i].Value += metric(it)
		groups[i].Count++
	}

	return groups
}

// SortDesc orders groups by value, largest first; ties keep their input order.
func SortDesc[K comparable](groups []Group[K]) {
	slices.SortStableFunc(groups, func(a, b Group[K]) int {
		return cmp.Compare(b.Value, a.Value)
	})
}

// SortAsc orders groups by key ascending.
func SortAsc[K cmp.Ordered](groups []Group[K]) {
	slices.SortStableFunc(groups, func(a, b Group[K]) int {
		return cmp.Compare(a.Key, b.Key)
	})
}

func Top[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}

// Round rounds half away from zero at the given number of decimal places.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func Round2(v float64) float64 {
	return Round(v, 2)
}

// Percent returns part as a percentage of total, rounded to 2 dp. A zero total yields 0.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(part / total * 100)
}

func Sum[T any](items []T, metric func(T) float64) float64 {
	var total float64
	for _, it := range items {
		total += metric(it)
	}
	return total
}

// Distinct returns the distinct keys in first-encountered order; keys reporting
// false are skipped.
func Distinct[T any, K comparable](items []T, key func(T) (K, bool)) []K {
	seen := make(map[K]struct{})
	out := make([]K, 0)
	for _, it := range items {
		k, ok := key(it)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func CountDistinct[T any, K comparable](items []T, key func(T) (K, bool)) int {
	return len(Distinct(items, key))
}

// NonEmpty and NonZero adapt plain field getters into key funcs that skip blanks.
func NonEmpty[T any](field func(T) string) func(T) (string, bool) {
	return func(it T) (string, bool) {
		v := field(it)
		return v, v != ""
	}
}

func NonZero[T any](field func(T) int) func(T) (int, bool) {
	return func(it T) (int, bool) {
		v := field(it)
		return v, v != 0
	}
}
