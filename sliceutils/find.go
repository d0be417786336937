package sliceutils

import (
	"github.com/denismitr/discordkit/utils"
)

type (
	// Predicate reports whether an element satisfies a condition.
	Predicate[T any] func(T) bool

	// Matcher is a single trait check used by Get.
	Matcher[T any] func(T) bool
)

// Find returns the first element of seq that satisfies the predicate.
// Unlike a filter it stops at the first match.
func Find[T any](pred Predicate[T], seq []T) (T, bool) {
	for _, element := range seq {
		if pred(element) {
			return element, true
		}
	}
	return utils.Zero[T](), false
}

// Get returns the first element of seq that satisfies every matcher.
// Matchers are combined with logical AND, not OR.
func Get[T any](seq []T, matchers ...Matcher[T]) (T, bool) {
	if len(matchers) == 0 {
		return utils.Zero[T](), false
	}

	for _, element := range seq {
		matched := true
		for _, m := range matchers {
			if !m(element) {
				matched = false
				break
			}
		}
		if matched {
			return element, true
		}
	}

	return utils.Zero[T](), false
}
