// Package fuzzy implements approximate substring matching with a similarity
// threshold. Scores range from 0 (exact) to 1 (no resemblance).
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// DefaultDistance is how many characters into the text a match may start
// before the location penalty alone reaches a full point.
const DefaultDistance = 100

// Options controls matching strictness
type Options struct {
	// Threshold is the highest score that still counts as a match
	Threshold float64
	// Distance scales the location penalty; zero means DefaultDistance
	Distance int
	// IgnoreLocation drops the location penalty entirely
	IgnoreLocation bool
}

func (o Options) distance() int {
	if o.Distance <= 0 {
		return DefaultDistance
	}
	return o.Distance
}

// Normalize folds width and case and collapses whitespace
func Normalize(s string) string {
	s = width.Fold.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Score returns how well pattern matches somewhere inside text.
// Both inputs are normalised first; an empty pattern scores 1.
func Score(pattern, text string, opts Options) float64 {
	return scoreNormalized([]rune(Normalize(pattern)), []rune(Normalize(text)), opts)
}

func scoreNormalized(pattern, text []rune, opts Options) float64 {
	m := len(pattern)
	if m == 0 {
		return 1
	}
	if len(text) == 0 {
		return 1
	}

	if i := strings.Index(string(text), string(pattern)); i >= 0 {
		start := len([]rune(string(text)[:i]))
		return clamp(locationPenalty(start, opts))
	}

	k := int(opts.Threshold * float64(m))
	minLen := m - k
	if minLen < 1 {
		minLen = 1
	}
	maxLen := m + k

	best := 1.0
	if len(text) < minLen {
		d := levenshtein.ComputeDistance(string(pattern), string(text))
		return clamp(float64(d) / float64(m))
	}

	for start := 0; start < len(text); start++ {
		penalty := locationPenalty(start, opts)
		if penalty >= best {
			break
		}
		for size := minLen; size <= maxLen; size++ {
			end := start + size
			if end > len(text) {
				end = len(text)
			}
			d := levenshtein.ComputeDistance(string(pattern), string(text[start:end]))
			if s := float64(d)/float64(m) + penalty; s < best {
				best = s
			}
			if end == len(text) {
				break
			}
		}
	}
	return clamp(best)
}

func locationPenalty(start int, opts Options) float64 {
	if opts.IgnoreLocation {
		return 0
	}
	return float64(start) / float64(opts.distance())
}

func clamp(score float64) float64 {
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

// Result is a matched record with its position in the indexed slice
type Result[T any] struct {
	Item  T
	Index int
	Score float64
}

// Index matches a pattern against one or more keys per record
type Index[T any] struct {
	items []T
	keys  [][][]rune
	opts  Options
}

// NewIndex normalises the keys of every item once
func NewIndex[T any](items []T, keys func(T) []string, opts Options) *Index[T] {
	ix := &Index[T]{
		items: items,
		keys:  make([][][]rune, len(items)),
		opts:  opts,
	}
	for i, item := range items {
		for _, key := range keys(item) {
			normalized := Normalize(key)
			if normalized == "" {
				continue
			}
			ix.keys[i] = append(ix.keys[i], []rune(normalized))
		}
	}
	return ix
}

// Len returns the number of indexed records
func (ix *Index[T]) Len() int {
	return len(ix.items)
}

// Search returns matching records ordered by score; ties keep index order
func (ix *Index[T]) Search(pattern string) []Result[T] {
	p := []rune(Normalize(pattern))
	if len(p) == 0 {
		return nil
	}

	var results []Result[T]
	for i, keys := range ix.keys {
		best := 1.0
		matched := false
		for _, key := range keys {
			s := scoreNormalized(p, key, ix.opts)
			if s <= ix.opts.Threshold && (!matched || s < best) {
				best = s
				matched = true
			}
		}
		if matched {
			results = append(results, Result[T]{Item: ix.items[i], Index: i, Score: best})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score < results[b].Score
	})
	return results
}
