package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortAsc sorts s in place.
func SortAsc[A constraints.Ordered](s []A) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// SortedCopy returns an ascending copy, leaving s untouched.
func SortedCopy[A constraints.Ordered](s []A) []A {
	res := make([]A, len(s))
	copy(res, s)
	SortAsc(res)
	return res
}

func IndexOf[A comparable](s []A, v A) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

// RemoveAll drops every occurrence of v, reusing the backing array.
func RemoveAll[A comparable](s []A, v A) []A {
	res := s[:0]
	for _, e := range s {
		if e != v {
			res = append(res, e)
		}
	}
	return res
}
